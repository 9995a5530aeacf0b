package dto

import (
	"dost/internal/domains/settings/model"
)

type UpdateAppConfigRequest struct {
	SiteTitle     string `db:"site_title"     json:"site_title"     validate:"omitempty,max=100"`
	ContactEmail  string `db:"contact_email"  json:"contact_email"  validate:"omitempty,email"`
	ContactPhone  string `db:"contact_phone"  json:"contact_phone"  validate:"omitempty,max=20"`
	LogoURL       string `db:"logo_url"       json:"logo_url"       validate:"omitempty,url"`
	FaviconURL    string `db:"favicon_url"    json:"favicon_url"    validate:"omitempty,url"`
	ThemeColor    string `db:"theme_color"    json:"theme_color"    validate:"omitempty,max=10"`
	FooterText    string `db:"footer_text"    json:"footer_text"    validate:"omitempty,max=200"`
	InstagramLink string `db:"instagram_link" json:"instagram_link" validate:"omitempty,url"`
	FacebookLink  string `db:"facebook_link"  json:"facebook_link"  validate:"omitempty,url"`
	TwitterLink   string `db:"twitter_link"   json:"twitter_link"   validate:"omitempty,url"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

type AppConfigResponse struct {
	SiteTitle    string      `json:"site_title"`
	ContactEmail string      `json:"contact_email"`
	ContactPhone string      `json:"contact_phone"`
	LogoURL      string      `json:"logo_url"`
	FaviconURL   string      `json:"favicon_url"`
	ThemeColor   string      `json:"theme_color"`
	FooterText   string      `json:"footer_text"`
	SocialLinks  SocialLinks `json:"social_links"`
}

func (a *AppConfigResponse) FromModel(model model.AppConfig) {
	a.SiteTitle = model.SiteTitle
	a.ContactEmail = model.ContactEmail
	a.ContactPhone = model.ContactPhone
	a.LogoURL = model.LogoURL
	a.FaviconURL = model.FaviconURL
	a.ThemeColor = model.ThemeColor
	a.FooterText = model.FooterText
	a.SocialLinks = SocialLinks{
		Instagram: model.InstagramLink,
		Facebook:  model.FacebookLink,
		Twitter:   model.TwitterLink,
	}
}
