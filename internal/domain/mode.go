package domain

// ProductivityMode is the environment mode selected on the dashboard
type ProductivityMode string

const (
	ModeDeepWork    ProductivityMode = "Deep Work"
	ModeStudy       ProductivityMode = "Study"
	ModeCreative    ProductivityMode = "Creative"
	ModeMeetingPrep ProductivityMode = "Meeting Prep"
	ModeRelax       ProductivityMode = "Relax"
)

// Modes lists every mode in selector order
var Modes = []ProductivityMode{ModeDeepWork, ModeStudy, ModeCreative, ModeMeetingPrep, ModeRelax}

// Accent returns the hex accent color for a mode
func (m ProductivityMode) Accent() string {
	switch m {
	case ModeDeepWork:
		return "#3B82F6" // Blue
	case ModeStudy:
		return "#14B8A6" // Teal
	case ModeCreative:
		return "#F97316" // Orange
	case ModeMeetingPrep:
		return "#A855F7" // Purple
	case ModeRelax:
		return "#4ADE80" // Green
	default:
		return "#14B8A6"
	}
}

// NextMode cycles forward through Modes
func NextMode(m ProductivityMode) ProductivityMode {
	return Modes[(modeIndex(m)+1)%len(Modes)]
}

// PrevMode cycles backward through Modes
func PrevMode(m ProductivityMode) ProductivityMode {
	return Modes[(modeIndex(m)+len(Modes)-1)%len(Modes)]
}

func modeIndex(m ProductivityMode) int {
	for i, mode := range Modes {
		if mode == m {
			return i
		}
	}
	return 0
}

// TimelineKind classifies a timeline block
type TimelineKind string

const (
	TimelineWork    TimelineKind = "work"
	TimelineBreak   TimelineKind = "break"
	TimelineMeeting TimelineKind = "meeting"
)

// TimelineStatus is the progress of a timeline block
type TimelineStatus string

const (
	StatusCompleted TimelineStatus = "completed"
	StatusActive    TimelineStatus = "active"
	StatusUpcoming  TimelineStatus = "upcoming"
)

// TimelineEntry is one block of the daily schedule
type TimelineEntry struct {
	ID     int
	Kind   TimelineKind
	Title  string
	Start  string // "09:00"
	End    string // "11:00"
	Status TimelineStatus
}

// UserStats are the focus metrics fed to the coach
type UserStats struct {
	FocusScore     int `json:"focusScore"`
	FocusMinutes   int `json:"focusMinutes"`
	TasksCompleted int `json:"tasksCompleted"`
}

// ModeShare is the time spent in one mode over the reporting window
type ModeShare struct {
	Mode    ProductivityMode
	Percent int
}
