package store

import (
	"time"

	"github.com/medconnect/backend/internal/models"
)

// Seed loads the demo dataset so a fresh process has a populated feed,
// directory and dashboard.
func (s *Store) Seed() error {
	cardiology := s.CreateCategory(models.Category{Name: "Cardiology", Color: "primary"})
	neurology := s.CreateCategory(models.Category{Name: "Neurology", Color: "secondary"})
	infectiousDisease := s.CreateCategory(models.Category{Name: "Infectious Disease", Color: "green-600"})

	webinar := s.CreateEventType(models.EventType{Name: "Webinar", Color: "primary"})
	workshop := s.CreateEventType(models.EventType{Name: "Workshop", Color: "secondary"})
	s.CreateEventType(models.EventType{Name: "Conference", Color: "accent/80"})

	johnWilson, err := s.CreateUser(models.User{
		Username:     "johnwilson",
		Password:     "password",
		Name:         "Dr. Prakash Varma",
		Title:        "Cardiologist",
		Organization: "Boston Medical Center",
		Specialty:    "Cardiology",
		Location:     "Boston, MA",
		Initials:     "JW",
		Role:         models.RoleSuperadmin,
	})
	if err != nil {
		return err
	}

	janeDavis, err := s.CreateUser(models.User{
		Username:     "janedavis",
		Password:     "password",
		Name:         "Dr. Jane Davis",
		Title:        "Neurologist",
		Organization: "Mass General Hospital",
		Specialty:    "Neurology",
		Location:     "Boston, MA",
		Initials:     "JD",
		IsConnected:  true,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	michaelSmith, err := s.CreateUser(models.User{
		Username:     "michaelsmith",
		Password:     "password",
		Name:         "Dr. Michael Smith",
		Title:        "Infectious Disease Specialist",
		Organization: "Johns Hopkins",
		Specialty:    "Infectious Disease",
		Location:     "Baltimore, MD",
		Initials:     "MS",
		IsConnected:  true,
		Role:         models.RolePatient,
	})
	if err != nil {
		return err
	}

	rebeccaJones, err := s.CreateUser(models.User{
		Username:     "rebeccajones",
		Password:     "password",
		Name:         "Dr. Rebecca Jones",
		Title:        "Pulmonologist",
		Organization: "Cleveland Clinic",
		Specialty:    "Pulmonology",
		Location:     "Cleveland, OH",
		Initials:     "RJ",
		IsConnected:  true,
		Role:         models.RolePatient,
	})
	if err != nil {
		return err
	}

	suggestions := []models.User{
		{
			Username:     "sarahadams",
			Password:     "password",
			Name:         "Dr. Sarah Adams",
			Title:        "Neurologist",
			Organization: "Mass General Hospital",
			Specialty:    "Neurology",
			Location:     "Boston, MA",
			Initials:     "SA",
			Role:         models.RolePatient,
		},
		{
			Username:     "robertlee",
			Password:     "password",
			Name:         "Dr. Robert Lee",
			Title:        "Pulmonologist",
			Organization: "Cleveland Clinic",
			Specialty:    "Pulmonology",
			Location:     "Cleveland, OH",
			Initials:     "RL",
			Role:         models.RolePatient,
		},
		{
			Username:     "karenpark",
			Password:     "password",
			Name:         "Dr. Karen Park",
			Title:        "Cardiologist",
			Organization: "Mayo Clinic",
			Specialty:    "Cardiology",
			Location:     "Rochester, MN",
			Initials:     "KP",
			Role:         models.RolePatient,
		},
	}
	for _, suggestion := range suggestions {
		if _, err := s.CreateUser(suggestion); err != nil {
			return err
		}
	}

	s.CreateProfile(models.Profile{
		UserID:            johnWilson.ID,
		ProfileCompletion: 85,
		RemainingItems:    3,
		NetworkGrowth:     12,
		NetworkGrowthDays: 30,
	})

	tavr := s.CreatePost(models.Post{
		Title:      "New JAMA Study: Long-term Outcomes of TAVR vs. SAVR in High-Risk Patients",
		Content:    "This groundbreaking research provides new insights into comparative outcomes for transcatheter and surgical aortic valve replacement procedures...",
		AuthorID:   johnWilson.ID,
		CategoryID: cardiology.ID,
		TimeAgo:    "2 days ago",
	})
	alzheimers := s.CreatePost(models.Post{
		Title:      "FDA Approves Novel Treatment for Early-Stage Alzheimer's Disease",
		Content:    "The FDA has granted approval for a new treatment targeting amyloid plaques, showing modest but meaningful cognitive benefits in early-stage patients...",
		AuthorID:   janeDavis.ID,
		CategoryID: neurology.ID,
		TimeAgo:    "4 days ago",
	})
	cdc := s.CreatePost(models.Post{
		Title:      "Updated CDC Guidelines for Managing Antibiotic-Resistant Infections",
		Content:    "New recommendations provide updated protocols for addressing the growing challenge of antimicrobial resistance in clinical settings...",
		AuthorID:   michaelSmith.ID,
		CategoryID: infectiousDisease.ID,
		TimeAgo:    "1 week ago",
	})

	s.AddPostParticipant(tavr.ID, janeDavis.ID)
	s.AddPostParticipant(tavr.ID, michaelSmith.ID)
	s.AddPostParticipant(alzheimers.ID, rebeccaJones.ID)
	s.AddPostParticipant(alzheimers.ID, johnWilson.ID)
	s.AddPostParticipant(alzheimers.ID, janeDavis.ID)
	s.AddPostParticipant(cdc.ID, janeDavis.ID)

	caseAnalysis := s.CreateDocument(models.Document{
		Filename: "Patient Case Analysis Q2.pdf",
		FileType: models.FileTypePDF,
		OwnerID:  johnWilson.ID,
		TimeAgo:  "2 days ago",
	})
	effectiveness := s.CreateDocument(models.Document{
		Filename: "Treatment Effectiveness Data.xlsx",
		FileType: models.FileTypeExcel,
		OwnerID:  johnWilson.ID,
		TimeAgo:  "5 days ago",
	})
	s.CreateDocument(models.Document{
		Filename: "Cardiology Conference Slides.pptx",
		FileType: models.FileTypePPT,
		OwnerID:  johnWilson.ID,
		TimeAgo:  "1 week ago",
	})

	s.ShareDocument(caseAnalysis.ID, []int{janeDavis.ID, michaelSmith.ID})
	s.ShareDocument(effectiveness.ID, []int{rebeccaJones.ID})

	s.CreateEvent(models.Event{
		Title:       "Advances in Cardiac Imaging Webinar",
		Location:    "Virtual Event",
		Time:        "2:00 PM - 3:30 PM EST",
		EventTypeID: webinar.ID,
		Date:        time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC),
	})
	s.CreateEvent(models.Event{
		Title:       "Clinical Research Methodology Workshop",
		Location:    "Boston Medical Center",
		Time:        "9:00 AM - 4:00 PM",
		EventTypeID: workshop.ID,
		Date:        time.Date(2023, time.June, 8, 0, 0, 0, 0, time.UTC),
	})

	seedStats := []models.Stat{
		{UserID: johnWilson.ID, Title: "New Research Articles", Value: 24, Icon: "article", IconColor: "text-primary", Change: 12, Timeframe: "last week"},
		{UserID: johnWilson.ID, Title: "Network Connections", Value: 128, Icon: "people", IconColor: "text-secondary", Change: 8, Timeframe: "last month"},
		{UserID: johnWilson.ID, Title: "Document Shares", Value: 16, Icon: "folder_shared", IconColor: "text-accent/80", Change: -3, Timeframe: "last week"},
		{UserID: johnWilson.ID, Title: "Pending Responses", Value: 7, Icon: "question_answer", IconColor: "text-yellow-500", Change: -5, Timeframe: "yesterday"},
	}
	for _, stat := range seedStats {
		s.CreateStat(stat)
	}

	return nil
}
