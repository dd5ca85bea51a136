package profile

import (
	"time"

	"github.com/noteflow/core/internal/models"
)

// UpdateProfileDTO carries partial profile edits; nil fields are untouched.
type UpdateProfileDTO struct {
	Username     *string             `json:"username"`
	FirstName    *string             `json:"first_name"`
	LastName     *string             `json:"last_name"`
	Avatar       *string             `json:"avatar"`
	CoverPhoto   *string             `json:"cover_photo"`
	Bio          *string             `json:"bio"`
	Location     *string             `json:"location"`
	Occupation   *string             `json:"occupation"`
	FieldOfStudy *string             `json:"field_of_study"`
	Education    *string             `json:"education"`
	Website      *string             `json:"website"`
	Birthday     *time.Time          `json:"birthday"`
	Gender       *string             `json:"gender"`
	SocialLinks  *models.StringSlice `json:"social_links"`
	Visibility   *string             `json:"visibility"`
	Theme        *string             `json:"theme"`
	Language     *string             `json:"language"`
	FontSize     *string             `json:"font_size"`
	FontFamily   *string             `json:"font_family"`
	Autosave     *bool               `json:"autosave"`
	Spellcheck   *bool               `json:"spellcheck"`
}

func (d *UpdateProfileDTO) updates() map[string]interface{} {
	u := map[string]interface{}{}
	set := func(key string, v interface{}, ok bool) {
		if ok {
			u[key] = v
		}
	}
	set("username", deref(d.Username), d.Username != nil)
	set("first_name", deref(d.FirstName), d.FirstName != nil)
	set("last_name", deref(d.LastName), d.LastName != nil)
	set("avatar", deref(d.Avatar), d.Avatar != nil)
	set("cover_photo", deref(d.CoverPhoto), d.CoverPhoto != nil)
	set("bio", deref(d.Bio), d.Bio != nil)
	set("location", deref(d.Location), d.Location != nil)
	set("occupation", deref(d.Occupation), d.Occupation != nil)
	set("field_of_study", deref(d.FieldOfStudy), d.FieldOfStudy != nil)
	set("education", deref(d.Education), d.Education != nil)
	set("website", deref(d.Website), d.Website != nil)
	set("gender", deref(d.Gender), d.Gender != nil)
	set("theme", deref(d.Theme), d.Theme != nil)
	set("language", deref(d.Language), d.Language != nil)
	set("font_size", deref(d.FontSize), d.FontSize != nil)
	set("font_family", deref(d.FontFamily), d.FontFamily != nil)
	if d.Birthday != nil {
		u["birthday"] = d.Birthday
	}
	if d.SocialLinks != nil {
		u["social_links"] = *d.SocialLinks
	}
	if d.Visibility != nil && (*d.Visibility == models.ProfilePublic || *d.Visibility == models.ProfilePrivate) {
		u["visibility"] = *d.Visibility
	}
	if d.Autosave != nil {
		u["autosave"] = *d.Autosave
	}
	if d.Spellcheck != nil {
		u["spellcheck"] = *d.Spellcheck
	}
	return u
}

func (d *UpdateProfileDTO) applyTo(p *models.ProfileModel) {
	if d.Username != nil {
		p.Username = *d.Username
	}
	if d.FirstName != nil {
		p.FirstName = *d.FirstName
	}
	if d.LastName != nil {
		p.LastName = *d.LastName
	}
	if d.Avatar != nil {
		p.Avatar = *d.Avatar
	}
	if d.CoverPhoto != nil {
		p.CoverPhoto = *d.CoverPhoto
	}
	if d.Bio != nil {
		p.Bio = *d.Bio
	}
	if d.Location != nil {
		p.Location = *d.Location
	}
	if d.Occupation != nil {
		p.Occupation = *d.Occupation
	}
	if d.FieldOfStudy != nil {
		p.FieldOfStudy = *d.FieldOfStudy
	}
	if d.Education != nil {
		p.Education = *d.Education
	}
	if d.Website != nil {
		p.Website = *d.Website
	}
	if d.Birthday != nil {
		p.Birthday = d.Birthday
	}
	if d.Gender != nil {
		p.Gender = *d.Gender
	}
	if d.SocialLinks != nil {
		p.SocialLinks = *d.SocialLinks
	}
	if d.Visibility != nil && (*d.Visibility == models.ProfilePublic || *d.Visibility == models.ProfilePrivate) {
		p.Visibility = *d.Visibility
	}
	if d.Theme != nil {
		p.Theme = *d.Theme
	}
	if d.Language != nil {
		p.Language = *d.Language
	}
	if d.FontSize != nil {
		p.FontSize = *d.FontSize
	}
	if d.FontFamily != nil {
		p.FontFamily = *d.FontFamily
	}
	if d.Autosave != nil {
		p.Autosave = *d.Autosave
	}
	if d.Spellcheck != nil {
		p.Spellcheck = *d.Spellcheck
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
