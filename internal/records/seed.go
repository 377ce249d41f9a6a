package records

import "time"

// Fixed default dataset written to a slot the first time it is read and
// found absent. Seeding never overwrites an existing slot.

func seedPatients() []Patient {
	return []Patient{
		{
			ID:               "p1",
			Name:             "John Doe",
			DOB:              "1990-05-10",
			Contact:          "1234567890",
			Email:            "john@entnt.in",
			HealthInfo:       "No allergies",
			Address:          "123 Main St, City",
			EmergencyContact: "9876543210",
		},
		{
			ID:               "p2",
			Name:             "Jane Smith",
			DOB:              "1985-08-15",
			Contact:          "2345678901",
			Email:            "jane@email.com",
			HealthInfo:       "Allergic to penicillin",
			Address:          "456 Oak Ave, Town",
			EmergencyContact: "8765432109",
		},
	}
}

func seedIncidents() []Incident {
	return []Incident{
		{
			ID:            "i1",
			PatientID:     "p1",
			Title:         "Regular Checkup",
			Description:   "Annual dental examination and cleaning",
			Comments:      "Patient has good oral hygiene",
			AppointmentAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Status:        StatusCompleted,
			Cost:          150,
			Treatment:     "Cleaning and examination",
			NextDate:      "2024-07-15",
			Files: []File{
				{
					ID:   "f1",
					Name: "invoice.pdf",
					Type: "application/pdf",
					Data: "JVBERi0xLjQK",
				},
			},
		},
		{
			ID:            "i2",
			PatientID:     "p2",
			Title:         "Cavity Filling",
			Description:   "Filling cavity in upper right molar",
			Comments:      "Patient experienced sensitivity",
			AppointmentAt: time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC),
			Status:        StatusCompleted,
			Cost:          300,
			Treatment:     "Composite filling",
			NextDate:      "2024-04-20",
			Files:         []File{},
		},
		{
			ID:            "i3",
			PatientID:     "p1",
			Title:         "Root Canal Consultation",
			Description:   "Consultation for potential root canal treatment",
			Comments:      "Patient reports severe pain",
			AppointmentAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			Status:        StatusScheduled,
			Files:         []File{},
		},
	}
}
