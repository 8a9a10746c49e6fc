package memory

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"

	"gearguard/internal/entities"
)

// Seed returns the development dataset. Due dates are relative to now so the
// dashboard always has a plausible mix of upcoming and overdue work.
func Seed(now time.Time) Dataset {
	return Dataset{
		Users:       seedUsers(),
		Teams:       seedTeams(),
		Equipment:   seedEquipment(now),
		Requests:    seedRequests(now),
		WorkCenters: seedWorkCenters(),
	}
}

func seedUsers() []entities.User {
	user := func(id, name, email string, role entities.UserRole, teamID string) entities.User {
		u := entities.User{
			ID:        id,
			Name:      name,
			Email:     email,
			AvatarURL: "https://i.pravatar.cc/150?u=" + id,
			Role:      role,
		}
		if teamID != "" {
			u.TeamID = null.StringFrom(teamID)
		}
		return u
	}

	return []entities.User{
		user("user-1", "Sarah Lee", "sarah.lee@example.com", entities.RoleAdmin, "team-1"),
		user("user-2", "Mike Chen", "mike.chen@example.com", entities.RoleManager, "team-2"),
		user("user-3", "David Rodriguez", "david.rodriguez@example.com", entities.RoleTechnician, "team-1"),
		user("user-4", "Emily White", "emily.white@example.com", entities.RoleTechnician, "team-2"),
		user("user-5", "Chris Green", "chris.green@example.com", entities.RoleTechnician, "team-3"),
		user("user-6", "Jessica Brown", "jessica.brown@example.com", entities.RoleEmployee, ""),
		user("user-7", "Kevin Taylor", "kevin.taylor@example.com", entities.RoleTechnician, "team-1"),
		user("user-8", "Olivia Martinez", "olivia.martinez@example.com", entities.RoleTechnician, "team-2"),
		user("user-9", "Ben Carter", "ben.carter@example.com", entities.RoleEmployee, ""),
		user("user-10", "Laura Hill", "laura.hill@example.com", entities.RoleTechnician, "team-3"),
	}
}

func seedTeams() []entities.Team {
	return []entities.Team{
		{ID: "team-1", Name: "Alpha Mechanics", Type: entities.TeamMechanics, MemberIDs: []string{"user-1", "user-3", "user-7"}},
		{ID: "team-2", Name: "Bravo Electricians", Type: entities.TeamElectricians, MemberIDs: []string{"user-2", "user-4", "user-8"}},
		{ID: "team-3", Name: "Charlie IT", Type: entities.TeamIT, MemberIDs: []string{"user-5", "user-10"}},
	}
}

func seedEquipment(now time.Time) []entities.Equipment {
	date := func(y, m, d int) time.Time {
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}

	return []entities.Equipment{
		{
			ID: "equip-1", Name: "CNC Machine X-5", SerialNumber: "SN-X5-001",
			Department: "Manufacturing", Location: "Floor 1, Bay A", Category: "Machinery",
			MaintenanceTeamID: "team-1", PurchaseDate: date(2022, 1, 15), WarrantyExpiry: date(2025, 1, 15),
			Status: entities.EquipmentOperational, Health: 25,
		},
		{
			ID: "equip-2", Name: "Packaging Robot Arm", SerialNumber: "SN-RA-002",
			Department: "Logistics", Location: "Warehouse 3", Category: "Robotics",
			MaintenanceTeamID: "team-2", PurchaseDate: date(2021, 6, 20), WarrantyExpiry: date(2024, 6, 20),
			Status: entities.EquipmentUnderMaintenance, Health: 45,
		},
		{
			ID: "equip-3", Name: "Conveyor Belt System", SerialNumber: "SN-CB-003",
			Department: "Manufacturing", Location: "Floor 1, Assembly Line", Category: "Machinery",
			MaintenanceTeamID: "team-1", PurchaseDate: date(2020, 11, 1), WarrantyExpiry: date(2023, 11, 1),
			Status: entities.EquipmentOperational, Health: 92,
		},
		{
			ID: "equip-4", Name: "Main Server Rack", SerialNumber: "SN-SR-004",
			Department: "IT", Location: "Data Center", Category: "IT Hardware",
			MaintenanceTeamID: "team-3", PurchaseDate: date(2023, 3, 10), WarrantyExpiry: date(2026, 3, 10),
			Status: entities.EquipmentOperational, Health: 98,
		},
		{
			ID: "equip-5", Name: "Forklift F-150", SerialNumber: "SN-FL-005",
			Department: "Logistics", Location: "Warehouse 1", Category: "Vehicle",
			MaintenanceTeamID: "team-1", PurchaseDate: date(2019, 8, 5), WarrantyExpiry: date(2022, 8, 5),
			IsScrapped: true, Status: entities.EquipmentScrapped, Health: 0,
		},
		{
			ID: "equip-6", Name: "HVAC Unit 2", SerialNumber: "SN-HVAC-006",
			Department: "Facilities", Location: "Rooftop", Category: "Facilities",
			MaintenanceTeamID: "team-2", PurchaseDate: date(2022, 9, 1), WarrantyExpiry: date(2027, 9, 1),
			Status: entities.EquipmentOperational, Health: 15,
		},
	}
}

func seedRequests(now time.Time) []entities.MaintenanceRequest {
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }

	return []entities.MaintenanceRequest{
		{
			ID: "req-1", Subject: "Grinding noise from main spindle", EquipmentID: "equip-1",
			AssignedTechnicianID: "user-3", TeamID: "team-1", RequesterID: "user-6",
			DueDate: days(3), Status: entities.StatusNew, RequestType: entities.TypeCorrective,
			Priority: entities.PriorityHigh,
			Notes:    null.StringFrom("Operator reported unusual noise during operation."),
			CreatedAt: days(-1), UpdatedAt: days(-1),
		},
		{
			ID: "req-2", Subject: "Robot arm not gripping properly", EquipmentID: "equip-2",
			AssignedTechnicianID: "user-4", TeamID: "team-2", RequesterID: "user-9",
			DueDate: days(-1), Status: entities.StatusInProgress, RequestType: entities.TypeCorrective,
			Priority: entities.PriorityHigh, Duration: null.Float64From(4),
			CreatedAt: days(-2), UpdatedAt: days(-1),
		},
		{
			ID: "req-3", Subject: "Quarterly lubrication and check-up", EquipmentID: "equip-3",
			AssignedTechnicianID: "user-7", TeamID: "team-1", RequesterID: "user-2",
			DueDate: days(10), Status: entities.StatusNew, RequestType: entities.TypePreventive,
			Priority: entities.PriorityMedium, ScheduledDate: null.TimeFrom(days(10)),
			CreatedAt: days(-3), UpdatedAt: days(-3),
		},
		{
			ID: "req-4", Subject: "Network switch unresponsive", EquipmentID: "equip-4",
			AssignedTechnicianID: "user-5", TeamID: "team-3", RequesterID: "user-6",
			DueDate: days(1), Status: entities.StatusInProgress, RequestType: entities.TypeCorrective,
			Priority: entities.PriorityMedium,
			CreatedAt: days(-4), UpdatedAt: days(-2),
		},
		{
			ID: "req-5", Subject: "Final inspection before disposal", EquipmentID: "equip-5",
			AssignedTechnicianID: "user-3", TeamID: "team-1", RequesterID: "user-2",
			DueDate: days(-20), Status: entities.StatusScrap, RequestType: entities.TypeCorrective,
			Priority: entities.PriorityLow,
			Notes:    null.StringFrom("Engine failed, beyond repair."),
			CreatedAt: days(-25), UpdatedAt: days(-20),
		},
		{
			ID: "req-6", Subject: "Filter replacement (Annual)", EquipmentID: "equip-6",
			AssignedTechnicianID: "user-8", TeamID: "team-2", RequesterID: "user-2",
			DueDate: days(30), Status: entities.StatusNew, RequestType: entities.TypePreventive,
			Priority: entities.PriorityLow, ScheduledDate: null.TimeFrom(days(30)),
			CreatedAt: days(-6), UpdatedAt: days(-6),
		},
		{
			ID: "req-7", Subject: "Hydraulic fluid leak", EquipmentID: "equip-1",
			AssignedTechnicianID: "user-7", TeamID: "team-1", RequesterID: "user-9",
			DueDate: days(2), Status: entities.StatusInProgress, RequestType: entities.TypeCorrective,
			Priority: entities.PriorityHigh,
			CreatedAt: days(-7), UpdatedAt: days(-5),
		},
		{
			ID: "req-8", Subject: "Completed software update", EquipmentID: "equip-4",
			AssignedTechnicianID: "user-10", TeamID: "team-3", RequesterID: "user-2",
			DueDate: days(-5), Status: entities.StatusRepaired, RequestType: entities.TypePreventive,
			Priority: entities.PriorityMedium, Duration: null.Float64From(2),
			Notes:    null.StringFrom("Firmware updated to v3.1.4"),
			CreatedAt: days(-10), UpdatedAt: days(-5),
		},
	}
}

func seedWorkCenters() []entities.WorkCenter {
	return []entities.WorkCenter{
		{
			ID: "wc-1", Name: "Assembly Line 1", Description: "Primary assembly line",
			Department: "Manufacturing", Tag: null.StringFrom("assembly"),
			CostPerHour: decimal.NewNullDecimal(decimal.NewFromFloat(120.50)),
			Capacity:    null.IntFrom(8), OEETarget: null.Float64From(0.85),
		},
		{
			ID: "wc-2", Name: "Packaging Station", Description: "Automated packaging and labelling",
			Department: "Logistics", Tag: null.StringFrom("packaging"),
			AlternativeWorkCenterIDs: []string{"wc-1"},
			CostPerHour:              decimal.NewNullDecimal(decimal.NewFromFloat(75)),
			Capacity:                 null.IntFrom(4), OEETarget: null.Float64From(0.9),
		},
		{
			ID: "wc-3", Name: "Server Room", Description: "IT infrastructure station",
			Department: "IT",
			CostPerHour: decimal.NewNullDecimal(decimal.NewFromFloat(200)),
			Capacity:    null.IntFrom(2), OEETarget: null.Float64From(0.99),
		},
	}
}
