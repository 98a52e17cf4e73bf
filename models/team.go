package models

// Team is one of the fixed workspace teams a member can join. ID doubles as
// the handle of the matching Slack user group.
type Team struct {
	Label string
	ID    string
}

// Teams is the static registry, loaded once at process start. Order matters
// only for modal display.
var Teams = []Team{
	{Label: "Campaign Team", ID: "campaign-team"},
	{Label: "Digital Marketing Team", ID: "digital-marketing-team"},
	{Label: "Editorial Team", ID: "editorial-team"},
	{Label: "Finance Team", ID: "finance-team"},
	{Label: "Networking Team", ID: "networking-team"},
	{Label: "Technology Team", ID: "tech-team"},
}

// TeamByID returns the registry entry for id, or false when id is not a
// known team.
func TeamByID(id string) (Team, bool) {
	for _, t := range Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
