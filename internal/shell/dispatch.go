package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/koisuji02/webterm/internal/content"
	"github.com/koisuji02/webterm/internal/games/grid"
	"github.com/koisuji02/webterm/internal/storage"
)

// Effect is a side effect requested by a command. The interpreter applies
// EffectClear and EffectLaunch itself; the others are for the front-end.
type Effect int

const (
	EffectNone Effect = iota
	EffectClear
	EffectLaunch
	EffectOpen
	EffectQuit
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectClear:
		return "Clear"
	case EffectLaunch:
		return "Launch"
	case EffectOpen:
		return "Open"
	case EffectQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Response is the result of dispatching one command.
type Response struct {
	Entries []Entry
	Effect  Effect
	GameID  string // set with EffectLaunch
	URL     string // set with EffectOpen
}

// Games lists the identifiers of the launchable games.
type Games interface {
	IDs() []string
}

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	Stats() ([]storage.GameStats, error)
}

// Env is the read-only data commands answer from.
type Env struct {
	Profile  content.Profile
	Projects content.Catalog
	Games    Games
	Scores   ScoreReader // optional
	Rand     grid.Rand   // used by "game" without a name
}

const (
	lsLine        = "about  skills  projects  notes  contacts"
	noProjects    = "no projects available."
	noNotes       = "no notes available."
	noScores      = "no scores recorded yet."
	scoresOff     = "scores are not being recorded."
	scoresFailed  = "scores unavailable."
	exitMessage   = "Exiting terminal..."
	topScoreLimit = 5
)

// Dispatch maps a command to its output and at most one effect. It reads
// env and never touches interpreter state.
func Dispatch(env Env, cmd Command) Response {
	switch cmd.Kind() {
	case CmdHelp:
		return lines(helpLines(env)...)
	case CmdAbout:
		return lines(aboutLines(env.Profile.About)...)
	case CmdSkills:
		return lines(skillLines(env.Profile.Skills)...)
	case CmdProjects:
		return lines(projectLines(env.Projects)...)
	case CmdNotes:
		return lines(noteLines(env.Profile.Notes)...)
	case CmdGame:
		return dispatchGame(env, cmd.Argument)
	case CmdScores:
		return dispatchScores(env, cmd.Argument)
	case CmdLs:
		return lines(lsLine)
	case CmdClear:
		return Response{Effect: EffectClear}
	case CmdQuit:
		return Response{Entries: []Entry{Output(exitMessage)}, Effect: EffectQuit}
	case CmdGitHub:
		return open(env.Profile.Contacts.GitHub, "Opening GitHub profile...")
	case CmdLinkedIn:
		return open(env.Profile.Contacts.LinkedIn, "Opening LinkedIn profile...")
	case CmdEmail:
		return open(env.Profile.Contacts.Email, "Opening email client...")
	case CmdUnknown:
		return lines("command not found: " + cmd.Name)
	}
	return lines("command not found: " + cmd.Name)
}

func lines(text ...string) Response {
	entries := make([]Entry, len(text))
	for i, t := range text {
		entries[i] = Output(t)
	}
	return Response{Entries: entries}
}

func open(url, message string) Response {
	return Response{Entries: []Entry{Output(message)}, Effect: EffectOpen, URL: url}
}

func gameIDs(env Env) []string {
	if env.Games == nil {
		return nil
	}
	return env.Games.IDs()
}

func helpLines(env Env) []string {
	out := []string{"Available commands:"}
	for _, name := range CommandNames() {
		out = append(out, "- "+name)
	}
	if ids := gameIDs(env); len(ids) > 0 {
		out = append(out, fmt.Sprintf("Usage: game [%s], omit the name for a random pick. Esc returns to the prompt.", strings.Join(ids, "|")))
	}
	return out
}

func aboutLines(a content.About) []string {
	var out []string
	if a.Title != "" {
		out = append(out, a.Title)
	}
	out = append(out, a.Bio, "Focus:")
	for _, f := range a.Focus {
		out = append(out, "- "+f)
	}
	return out
}

func skillLines(groups []content.SkillGroup) []string {
	var out []string
	for i, g := range groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, g.Title)
		for _, s := range g.Items {
			out = append(out, fmt.Sprintf("- %s (%d)", s.Name, s.Level))
		}
	}
	return out
}

func projectLines(c content.Catalog) []string {
	projects := c.Ordered()
	if len(projects) == 0 {
		return []string{noProjects}
	}

	var out []string
	for i, p := range projects {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, p.Title, "  "+p.Description)
		if len(p.Tags) > 0 {
			out = append(out, "  "+strings.Join(p.Tags, " | "))
		}
	}
	return out
}

func noteLines(notes []content.Note) []string {
	titles := make([]string, 0, len(notes))
	for _, n := range notes {
		if t := n.DisplayTitle(); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) == 0 {
		return []string{noNotes}
	}

	sort.SliceStable(titles, func(i, j int) bool {
		a, b := strings.ToLower(titles[i]), strings.ToLower(titles[j])
		if a != b {
			return a < b
		}
		return titles[i] < titles[j]
	})
	return titles
}

func dispatchGame(env Env, name string) Response {
	ids := gameIDs(env)
	if len(ids) == 0 {
		return lines("no games available.")
	}

	var id string
	if name == "" {
		id = ids[0]
		if env.Rand != nil {
			id = ids[env.Rand.Intn(len(ids))]
		}
	} else {
		want := strings.ToLower(name)
		for _, candidate := range ids {
			if candidate == want {
				id = candidate
				break
			}
		}
	}

	if id == "" {
		return lines(
			"unknown game: "+name,
			"supported games: "+strings.Join(ids, ", "),
		)
	}

	return Response{
		Entries: []Entry{Output(fmt.Sprintf("Launching %s... Press Esc to return to the prompt.", id))},
		Effect:  EffectLaunch,
		GameID:  id,
	}
}

func dispatchScores(env Env, name string) Response {
	if env.Scores == nil {
		return lines(scoresOff)
	}

	if name == "" {
		stats, err := env.Scores.Stats()
		if err != nil {
			return lines(scoresFailed)
		}
		if len(stats) == 0 {
			return lines(noScores)
		}
		out := make([]string, 0, len(stats))
		for _, s := range stats {
			out = append(out, fmt.Sprintf("%-8s best %d (%d played)", s.GameID, s.HighScore, s.GamesCount))
		}
		return lines(out...)
	}

	want := strings.ToLower(name)
	known := false
	for _, id := range gameIDs(env) {
		if id == want {
			known = true
			break
		}
	}
	if !known {
		return lines(
			"unknown game: "+name,
			"supported games: "+strings.Join(gameIDs(env), ", "),
		)
	}

	top, err := env.Scores.TopScores(want, topScoreLimit)
	if err != nil {
		return lines(scoresFailed)
	}
	if len(top) == 0 {
		return lines(noScores)
	}
	out := make([]string, 0, len(top))
	for i, e := range top {
		out = append(out, fmt.Sprintf("%d. %d  %s", i+1, e.Score, e.Player))
	}
	return lines(out...)
}
