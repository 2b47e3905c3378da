package domain

// DefaultDirectory builds the Mergington High School activity catalog. The
// catalog is seeded once at process start; activities are never created or
// deleted at runtime, only their rosters change.
func DefaultDirectory() *Directory {
	dir := NewDirectory()
	for _, act := range []Activity{
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team with practice and tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Tennis instruction and competitive matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"sarah@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art mediums including painting and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Theater productions and acting workshops",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "grace@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Competitive debate and public speaking development",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"aiden@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and scientific research projects",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"rachel@mergington.edu", "tyler@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	} {
		// Catalog names are distinct, so Add cannot fail here.
		_ = dir.Add(act)
	}
	return dir
}
