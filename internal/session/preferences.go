package session

import (
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
)

type Preferences struct {
	Theme       Theme  `json:"theme"`
	Location    string `json:"location"`
	CountryCode string `json:"country_code,omitempty"`
}

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	Theme    *string
	Location *string
}

func (s *Session) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences()
}

func (s *Session) UpdatePreferences(update PreferencesUpdate) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Theme != nil {
		theme, ok := ParseTheme(*update.Theme)
		if !ok {
			return Preferences{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported theme").
				WithDetails(map[string]string{"theme": *update.Theme})
		}
		s.theme = theme
	}
	if update.Location != nil {
		s.location = *update.Location
	}
	return s.preferences(), nil
}

func (s *Session) preferences() Preferences {
	code, _ := s.resolver.ResolveCountryCode(s.location, s.location)
	return Preferences{Theme: s.theme, Location: s.location, CountryCode: code}
}
