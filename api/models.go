package api

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned from a successful POST /api/login. The sheet
// fields are absent for the admin account.
type LoginResponse struct {
	Success       bool   `json:"success"`
	IsAdmin       bool   `json:"isAdmin"`
	SheetURL      string `json:"sheetUrl,omitempty"`
	EditPlanSheet string `json:"editPlanSheet,omitempty"`
	Username      string `json:"username"`
}

// VerifyResponse is returned from GET /api/verify for a valid session.
// LastSearchName is only present for admins with a stored last search.
type VerifyResponse struct {
	Authenticated  bool   `json:"authenticated"`
	IsAdmin        bool   `json:"isAdmin"`
	SheetURL       string `json:"sheetUrl,omitempty"`
	EditPlanSheet  string `json:"editPlanSheet,omitempty"`
	Username       string `json:"username"`
	UserKeyHash    string `json:"userKeyHash"`
	LastSearchName string `json:"lastSearchName,omitempty"`
}

// notAuthenticatedResponse is the uniform reply for a missing or invalid
// session on GET /api/verify; no other claim fields leak out.
type notAuthenticatedResponse struct {
	Authenticated bool `json:"authenticated"`
}

// AdminSearchRequest is the JSON body for POST /api/admin-search.
type AdminSearchRequest struct {
	SearchName string `json:"searchName"`
}

// AdminSearchResponse is returned from a successful POST /api/admin-search.
type AdminSearchResponse struct {
	Success       bool   `json:"success"`
	SheetURL      string `json:"sheetUrl"`
	EditPlanSheet string `json:"editPlanSheet"`
	SearchName    string `json:"searchName"`
}

// FellesOkterURLResponse is returned from GET /api/felles-okter-url.
type FellesOkterURLResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is returned for all error cases.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
