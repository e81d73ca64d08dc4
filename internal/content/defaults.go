package content

import "github.com/karafilm/go-sitecms/domain"

// DefaultContent returns the hard-coded fallback document used when neither
// the remote store nor the local mirror can serve a read. Lists are empty
// but non-nil so the rendered JSON carries `[]` instead of `null`.
func DefaultContent() *SiteContent {
	return &SiteContent{
		CompanyName: domain.Bilingual{
			Fa: "کارا فیلم",
			En: "Kara Film",
		},
		MenuItems:  []MenuItem{},
		Works:      []Work{},
		Articles:   []Article{},
		EventsList: []EventItem{},
		About: About{
			Socials: []SocialLink{},
		},
	}
}
