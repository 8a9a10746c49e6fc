package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/board"
	"gearguard/internal/repositories"
)

type ReportService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewReportService(store *repositories.Store, logger *zap.Logger) *ReportService {
	return &ReportService{store: store, logger: logger}
}

var requestReportHeaders = []string{
	"ID", "Subject", "Equipment", "Team", "Technician", "Requester",
	"Status", "Type", "Priority", "Due Date", "Duration (h)", "Created At",
}

// BuildRequestReport renders the filtered request list as an XLSX workbook.
// The caller owns the returned file.
func (s *ReportService) BuildRequestReport(ctx context.Context, f board.Filters) (*excelize.File, error) {
	requests, err := s.store.Requests.ListRequests(ctx, f)
	if err != nil {
		return nil, err
	}

	names, err := s.lookupNames(ctx)
	if err != nil {
		s.logger.Warn("report name lookup incomplete, falling back to ids", zap.Error(err))
	}

	file := excelize.NewFile()
	const sheet = "Maintenance Requests"
	file.SetSheetName("Sheet1", sheet)
	file.SetSheetRow(sheet, "A1", &requestReportHeaders)
	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		file.SetCellStyle(sheet, "A1", "L1", style)
	}

	const dateFmt = "2006-01-02"
	for i, r := range requests {
		duration := ""
		if r.Duration.Valid {
			duration = fmt.Sprintf("%.1f", r.Duration.Float64)
		}
		row := []interface{}{
			r.ID, r.Subject,
			names.resolve(names.equipment, r.EquipmentID),
			names.resolve(names.teams, r.TeamID),
			names.resolve(names.users, r.AssignedTechnicianID),
			names.resolve(names.users, r.RequesterID),
			string(r.Status), string(r.RequestType), string(r.Priority),
			r.DueDate.Format(dateFmt), duration, r.CreatedAt.Format(dateFmt),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		file.SetSheetRow(sheet, cell, &row)
	}

	file.SetColWidth(sheet, "B", "B", 40)
	file.SetColWidth(sheet, "C", "F", 25)
	return file, nil
}

type nameIndex struct {
	equipment map[string]string
	teams     map[string]string
	users     map[string]string
}

func (n nameIndex) resolve(index map[string]string, id string) string {
	if name, ok := index[id]; ok {
		return name
	}
	return id
}

func (s *ReportService) lookupNames(ctx context.Context) (nameIndex, error) {
	names := nameIndex{
		equipment: make(map[string]string),
		teams:     make(map[string]string),
		users:     make(map[string]string),
	}

	equipment, err := s.store.Equipment.ListEquipment(ctx)
	if err != nil {
		return names, err
	}
	for _, e := range equipment {
		names.equipment[e.ID] = e.Name
	}

	teams, err := s.store.Teams.ListTeams(ctx)
	if err != nil {
		return names, err
	}
	for _, t := range teams {
		names.teams[t.ID] = t.Name
	}

	users, err := s.store.Users.ListUsers(ctx)
	if err != nil {
		return names, err
	}
	for _, u := range users {
		names.users[u.ID] = u.Name
	}
	return names, nil
}
