package models

// Session is the customer-facing authenticated identity. Absent means
// anonymous browsing; the cart store rejects mutations in that state.
type Session struct {
	UID          string `json:"uid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

// AdminSession is the management console credential: a username plus an
// opaque bearer token issued by the backend's /admin/login. It is stored
// verbatim and unrelated to the customer Session.
type AdminSession struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
