package core

// Request types

type CreateGameRequest struct {
	Layout     string `json:"layout,omitempty" validate:"omitempty,min=32,max=34"` // 32 squares, optional " b"/" r" side to move
	FirstColor string `json:"firstColor,omitempty" validate:"omitempty,oneof=black red"`
}

type ActionRequest struct {
	Position int `json:"position" validate:"required,min=1,max=32"`
}

// Response types

type GameResponse struct {
	GameID           string      `json:"gameId"`
	Layout           string      `json:"layout"`
	Turn             string      `json:"turn"`  // "black" or "red"
	State            string      `json:"state"` // "ongoing", "black wins", ...
	Selected         int         `json:"selected,omitempty"`
	SelectionValid   bool        `json:"selectionValid"`
	Destinations     []int       `json:"destinations,omitempty"` // legal targets of the selected piece
	MandatoryCapture bool        `json:"mandatoryCapture"`
	MustContinueFrom int         `json:"mustContinueFrom,omitempty"`
	GameOver         bool        `json:"gameOver"`
	TurnNumber       int         `json:"turnNumber"`
	Version          int         `json:"version"` // bumped on every accepted action
	Pieces           PieceCounts `json:"pieces"`
	LastMove         *MoveInfo   `json:"lastMove,omitempty"`
}

type PieceCounts struct {
	Black      int `json:"black"`
	BlackKings int `json:"blackKings"`
	Red        int `json:"red"`
	RedKings   int `json:"redKings"`
}

type MoveInfo struct {
	Color    string `json:"color"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	Capture  bool   `json:"capture"`
	Captured int    `json:"captured,omitempty"`
	Promoted bool   `json:"promoted"`
}

type ActionInfo struct {
	Kind      string    `json:"kind"` // "selected", "deselected", "moved", "turn_ended", "game_over"
	Position  int       `json:"position,omitempty"`
	NextColor string    `json:"nextColor,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Move      *MoveInfo `json:"move,omitempty"`
}

type ActionResponse struct {
	Result ActionInfo   `json:"result"`
	Game   GameResponse `json:"game"`
}

type BoardResponse struct {
	Layout string `json:"layout"`
	Board  string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
