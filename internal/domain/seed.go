package domain

import "time"

// MockAnchors is the fixed room used when no anchors file is configured
func MockAnchors() []SpatialAnchor {
	return []SpatialAnchor{
		{ID: "a1", Type: AnchorWall, Position: Vec3{X: 100, Y: 50}, Dimensions: Size{Width: 200, Height: 10}, Label: "Main Wall"},
		{ID: "a2", Type: AnchorTable, Position: Vec3{X: 100, Y: 150}, Dimensions: Size{Width: 120, Height: 60}, Label: "Work Desk"},
		{ID: "a3", Type: AnchorOpenSpace, Position: Vec3{X: 250, Y: 150}, Dimensions: Size{Width: 100, Height: 100}, Label: "Focus Zone"},
	}
}

// MockNotes seeds the session's notes
func MockNotes() []*Note {
	return []*Note{
		{
			ID:        "1",
			Title:     "Project Alpha Brainstorm",
			Body:      "Need to focus on the core architecture. The latency requirements are strict. Consider using edge computing for the semantic processing. Team meeting at 2 PM.",
			Tags:      []string{"Architecture", "Urgent"},
			CreatedAt: time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Title:     "Design System Audit",
			Body:      "The color palette feels disconnected in dark mode. Need to review the contrast ratios for the secondary text elements.",
			Tags:      []string{"Design", "UI/UX"},
			CreatedAt: time.Date(2023, 10, 26, 15, 30, 0, 0, time.UTC),
		},
	}
}

// MockTimeline is today's schedule
func MockTimeline() []TimelineEntry {
	return []TimelineEntry{
		{ID: 1, Kind: TimelineWork, Title: "Deep Work", Start: "09:00", End: "11:00", Status: StatusCompleted},
		{ID: 2, Kind: TimelineBreak, Title: "Coffee Break", Start: "11:00", End: "11:15", Status: StatusCompleted},
		{ID: 3, Kind: TimelineMeeting, Title: "Sync w/ Design", Start: "11:15", End: "12:00", Status: StatusActive},
		{ID: 4, Kind: TimelineWork, Title: "Project Alpha", Start: "12:00", End: "13:30", Status: StatusUpcoming},
		{ID: 5, Kind: TimelineBreak, Title: "Lunch", Start: "13:30", End: "14:30", Status: StatusUpcoming},
	}
}

// MockStats are the focus metrics shown on the dashboard
func MockStats() UserStats {
	return UserStats{FocusScore: 85, FocusMinutes: 252, TasksCompleted: 12}
}

// MockModeDistribution is the weekly time split per mode
func MockModeDistribution() []ModeShare {
	return []ModeShare{
		{Mode: ModeDeepWork, Percent: 45},
		{Mode: ModeStudy, Percent: 25},
		{Mode: ModeCreative, Percent: 15},
		{Mode: ModeMeetingPrep, Percent: 10},
		{Mode: ModeRelax, Percent: 5},
	}
}
