package service

// TokenKind selects which secret a token is checked against.
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

func (k TokenKind) String() string {
	if k == RefreshToken {
		return "refresh"
	}
	return "access"
}

// VerifyOutcome is the result of checking one token.
type VerifyOutcome int

const (
	OutcomeMissing VerifyOutcome = iota
	OutcomeInvalid
	OutcomeExpired
	OutcomeValid
)

// SessionStatus is the client session state implied by a verification.
// Nothing is stored server side; the status is recomputed per request.
type SessionStatus int

const (
	SessionAnonymous SessionStatus = iota
	SessionAuthenticated
	SessionAccessExpired
	SessionRefreshExpired
)

func (s SessionStatus) String() string {
	switch s {
	case SessionAuthenticated:
		return "authenticated"
	case SessionAccessExpired:
		return "access_expired"
	case SessionRefreshExpired:
		return "refresh_expired"
	default:
		return "anonymous"
	}
}

func (s SessionStatus) Authenticated() bool {
	return s == SessionAuthenticated
}

// Transition maps a verification outcome for a token kind to the resulting
// session status.
func Transition(kind TokenKind, outcome VerifyOutcome) SessionStatus {
	switch outcome {
	case OutcomeValid:
		return SessionAuthenticated
	case OutcomeExpired:
		if kind == RefreshToken {
			return SessionRefreshExpired
		}
		return SessionAccessExpired
	default:
		return SessionAnonymous
	}
}
