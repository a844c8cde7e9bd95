package model

type Business struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	PhotoURI    string   `json:"photo_uri,omitempty"`
	Services    []string `json:"services,omitempty"`
}

type Provider struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	BusinessName string   `json:"business_name"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
	ServiceArea  string   `json:"service_area"`
	Photos       []string `json:"photos"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Category     string   `json:"category"`
	Location     string   `json:"location"`
}

// ProviderFromBusiness derives the public provider profile of a business.
func ProviderFromBusiness(b Business, hourlyRate *float64) Provider {
	photos := []string{}
	if b.PhotoURI != "" {
		photos = append(photos, b.PhotoURI)
	}
	skills := append([]string{}, b.Services...)
	return Provider{
		ID:           b.ID,
		UserID:       "user-" + b.ID,
		BusinessName: b.Name,
		Bio:          b.Description,
		Skills:       skills,
		HourlyRate:   hourlyRate,
		ServiceArea:  b.Location,
		Photos:       photos,
		Phone:        b.Phone,
		Email:        b.Email,
		Category:     b.Category,
		Location:     b.Location,
	}
}

type JobListing struct {
	ID               string `json:"id"`
	ClientName       string `json:"client_name"`
	ClientAvatar     string `json:"client_avatar,omitempty"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	ImagePlaceholder string `json:"image_placeholder,omitempty"`
	Category         string `json:"category"`
}

// BusinessProfile is a business with ready-to-use contact links.
type BusinessProfile struct {
	Business
	PhoneURI string `json:"phone_uri,omitempty"`
	EmailURI string `json:"email_uri,omitempty"`
}
