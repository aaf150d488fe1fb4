package http

// routeReq is the body of POST /voice/route.
type routeReq struct {
	Text              string `json:"text" binding:"required"`
	Pathname          string `json:"pathname"`
	FamilyModeEnabled bool   `json:"familyModeEnabled"`
	SelectedDate      string `json:"selectedDate"`
}

// executeReq is the body of POST /voice/execute. The client echoes back the
// intent and slots it received from the route call, possibly with follow-up
// answers merged in.
type executeReq struct {
	Intent string            `json:"intent" binding:"required"`
	Slots  map[string]string `json:"slots"`
}

// undoReq is the body of POST /voice/undo.
type undoReq struct {
	UndoToken string `json:"undo_token" binding:"required"`
}

// traceToggleReq is the body of PUT /debug/trace/enabled.
type traceToggleReq struct {
	Enabled bool `json:"enabled"`
}
