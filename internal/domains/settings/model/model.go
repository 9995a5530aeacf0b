package model

import "dost/shared/model"

const (
	TableName  = "app_config"
	EntityName = "settings"

	// SingletonID keys the single configuration row.
	SingletonID = "default"

	FieldID            = "id"
	FieldSiteTitle     = "site_title"
	FieldContactEmail  = "contact_email"
	FieldContactPhone  = "contact_phone"
	FieldLogoURL       = "logo_url"
	FieldFaviconURL    = "favicon_url"
	FieldThemeColor    = "theme_color"
	FieldFooterText    = "footer_text"
	FieldInstagramLink = "instagram_link"
	FieldFacebookLink  = "facebook_link"
	FieldTwitterLink   = "twitter_link"
)

type AppConfig struct {
	ID            string `db:"id"`
	SiteTitle     string `db:"site_title"`
	ContactEmail  string `db:"contact_email"`
	ContactPhone  string `db:"contact_phone"`
	LogoURL       string `db:"logo_url"`
	FaviconURL    string `db:"favicon_url"`
	ThemeColor    string `db:"theme_color"`
	FooterText    string `db:"footer_text"`
	InstagramLink string `db:"instagram_link"`
	FacebookLink  string `db:"facebook_link"`
	TwitterLink   string `db:"twitter_link"`
	model.Metadata
}
