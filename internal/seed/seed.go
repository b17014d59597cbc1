// Package seed populates the store with the initial campus data on first
// run. Slices that already exist on disk are left alone so admin edits
// survive restarts.
package seed

import (
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/repositories"
	"github.com/unistone/campus/internal/store"
)

// CreateDefaultData writes the initial slices that are missing from the
// store. It never overwrites existing data.
func CreateDefaultData(db *store.Store, lgr zerolog.Logger) {
	lgr.Info().Msg("Checking/Creating default campus data...")

	seedSlice(db, lgr, repositories.KeyStudents, defaultStudents())
	seedSlice(db, lgr, repositories.KeyFaculty, defaultFaculty())
	seedSlice(db, lgr, repositories.KeyBuildings, defaultBuildings())
	seedSlice(db, lgr, repositories.KeyCourses, defaultCourses())
	seedSlice(db, lgr, repositories.KeyEvents, defaultEvents())
	seedSlice(db, lgr, repositories.KeyJobs, defaultJobs())
	seedSlice(db, lgr, repositories.KeyNews, defaultNews())
	seedSlice(db, lgr, repositories.KeySettings, models.DefaultSettings())
}

func seedSlice(db *store.Store, lgr zerolog.Logger, key string, value interface{}) {
	if db.Has(key) {
		return
	}
	db.Write(key, value)
	lgr.Info().Str("key", key).Msg("Seeded default slice")
}

func defaultStudents() []models.User {
	return []models.User{
		{
			ID:         "STU-001",
			Name:       "Sarah Connor",
			Email:      "sarah@unistone.edu",
			Role:       models.RoleStudent,
			Department: "CS",
			XP:         1200,
			Streak:     5,
			Attendance: 92,
			Status:     models.StatusActive,
			Image:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:         "STU-002",
			Name:       "John Doe",
			Email:      "john@unistone.edu",
			Role:       models.RoleStudent,
			Department: "IT",
			XP:         800,
			Streak:     2,
			Attendance: 75,
			Status:     models.StatusActive,
			Image:      "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=400",
		},
	}
}

func defaultFaculty() []models.User {
	return []models.User{
		{
			ID:         "FAC-001",
			Name:       "Dr. Alan Turing",
			Email:      "alan@unistone.edu",
			Role:       models.RoleFaculty,
			Department: "CS",
			Block:      "B Block",
			Bio:        "Visionary in the field of Artificial Intelligence.",
			Status:     models.StatusActive,
			Image:      "https://images.unsplash.com/photo-1566492031773-4fbc7dddf5af?auto=format&fit=crop&q=80&w=400",
		},
		{
			ID:         "FAC-002",
			Name:       "Dr. Neha Gupta",
			Email:      "neha@unistone.edu",
			Role:       models.RoleFaculty,
			Department: "Pharmacy",
			Block:      "I Block",
			Bio:        "Expert in Pharmaceutical Sciences.",
			Status:     models.StatusActive,
			Image:      "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=400",
		},
	}
}

func defaultBuildings() []models.CampusBuilding {
	return []models.CampusBuilding{
		{
			ID:          "A",
			Name:        "A Block (Admin)",
			Description: "Central hub for university management and registrar.",
			Color:       "bg-[#8B0000]",
			Image:       "https://images.unsplash.com/photo-1562774053-701939374585?w=600&h=400&fit=crop",
			Floors:      3,
			Departments: []string{"Registry", "Accounts"},
			Facilities:  []string{"ATM", "Reception"},
			MapCoords:   models.MapCoords{Top: "20%", Left: "50%"},
		},
		{
			ID:          "B",
			Name:        "B Block (Tech)",
			Description: "School of CS & Artificial Intelligence.",
			Color:       "bg-blue-600",
			Image:       "https://images.unsplash.com/photo-1519452635265-7b1fbfd1e4e0?w=600&h=400&fit=crop",
			Floors:      5,
			Departments: []string{"CS", "AI"},
			Facilities:  []string{"Server Hub", "AI Lab"},
			MapCoords:   models.MapCoords{Top: "35%", Left: "40%"},
		},
		{
			ID:          "D",
			Name:        "D Block (Engineering)",
			Description: "Advanced mechanical and electrical workshops.",
			Color:       "bg-indigo-600",
			Image:       "https://images.unsplash.com/photo-1581092583537-20d51b4b4f1b?w=600&h=400&fit=crop",
			Floors:      4,
			Departments: []string{"Mech", "Civil"},
			Facilities:  []string{"CAD Lab", "Fluid Lab"},
			MapCoords:   models.MapCoords{Top: "45%", Left: "30%"},
		},
	}
}

func defaultCourses() []models.Course {
	return []models.Course{
		{
			ID:              "c1",
			Name:            "AI Node Architecture",
			Code:            "CS301",
			Instructor:      "Dr. Alan Turing",
			InstructorImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
			NotesCount:      24,
			LecturesCount:   12,
			Description:     "Deep dive into neural network synchronization protocols.",
			Modules: []models.Module{
				{
					ID:    "m1",
					Title: "Week 1: Fundamentals of Mesh",
					Lectures: []models.Lecture{
						{ID: "l1", Title: "Mesh Topology 101", Duration: "45:00", Status: models.LectureCompleted, Type: models.LectureTypeLecture},
						{ID: "l2", Title: "Gradient Descent Sync", Duration: "52:00", Status: models.LectureCompleted, Type: models.LectureTypeLecture},
					},
				},
				{
					ID:    "m2",
					Title: "Week 2: Advanced Processing",
					Lectures: []models.Lecture{
						{ID: "l3", Title: "Convolutional Hubs", Duration: "48:00", Status: models.LecturePending, Type: models.LectureTypeLecture},
					},
				},
			},
		},
		{
			ID:              "c2",
			Name:            "Quantum Engineering",
			Code:            "QE202",
			Instructor:      "Prof. Feynman",
			InstructorImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
			NotesCount:      15,
			LecturesCount:   8,
			Description:     "Application of quantum mechanics in modern infrastructure.",
			Modules: []models.Module{
				{
					ID:    "m3",
					Title: "Module 1: Quantum Flows",
					Lectures: []models.Lecture{
						{ID: "l4", Title: "Qubit Flow Control", Duration: "40:00", Status: models.LectureCompleted, Type: models.LectureTypeLecture},
						{ID: "l5", Title: "Superposition Logic", Duration: "55:00", Status: models.LecturePending, Type: models.LectureTypeLecture},
					},
				},
			},
		},
	}
}

func defaultEvents() []models.CampusEvent {
	return []models.CampusEvent{
		{
			ID:              "e1",
			Title:           "Sage Hackathon 2024",
			Description:     "Build the next campus protocol.",
			Date:            "Oct 24",
			Time:            "09:00 AM",
			Location:        "B Block Hub",
			Image:           "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800&h=400&fit=crop",
			RegisteredCount: 450,
			Type:            models.EventHackathon,
		},
		{
			ID:              "e2",
			Title:           "Alumni Meet: The Builders",
			Description:     "Connect with legends.",
			Date:            "Nov 12",
			Time:            "05:00 PM",
			Location:        "Aagan Terrace",
			Image:           "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=800&h=400&fit=crop",
			RegisteredCount: 890,
			Type:            models.EventCultural,
		},
	}
}

func defaultJobs() []models.Job {
	return []models.Job{
		{
			ID:         "j1",
			Title:      "Node Architect Intern",
			Company:    "Google",
			Type:       models.JobInternship,
			Location:   "Remote",
			Salary:     "60k/mo",
			Tags:       []string{"React", "Sync"},
			Niche:      "Engineering",
			Applicants: []models.Applicant{},
		},
		{
			ID:         "j2",
			Title:      "ML Mesh Engineer",
			Company:    "NVIDIA",
			Type:       models.JobFullTime,
			Location:   "Indore Hub",
			Salary:     "18 LPA",
			Tags:       []string{"Python", "CUDA"},
			Niche:      "CS",
			Applicants: []models.Applicant{},
		},
	}
}

func defaultNews() []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:       "n1",
			Title:    "The Future of Generative AI in Engineering",
			Source:   "TechCrunch",
			Category: "Engineering",
			Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400&h=250&fit=crop",
			URL:      "#",
			ReadTime: "5 min",
		},
		{
			ID:       "n2",
			Title:    "Quantum Computing Nodes Establish Record Sync",
			Source:   "Wired",
			Category: "CS",
			Image:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400&h=250&fit=crop",
			URL:      "#",
			ReadTime: "4 min",
		},
		{
			ID:       "n3",
			Title:    "New Biotech Mesh Speeds Up Drug Formulation",
			Source:   "Nature",
			Category: "Pharmacy",
			Image:    "https://images.unsplash.com/photo-1532187875605-7fe35803efbe?w=400&h=250&fit=crop",
			URL:      "#",
			ReadTime: "3 min",
		},
		{
			ID:       "n4",
			Title:    "Autonomous Campus Shuttles: A Pilot Program",
			Source:   "The Verge",
			Category: "General",
			Image:    "https://images.unsplash.com/photo-1519067758434-d13d7edd4a4a?w=400&h=250&fit=crop",
			URL:      "#",
			ReadTime: "6 min",
		},
	}
}
