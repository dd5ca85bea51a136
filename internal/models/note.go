package models

// Note visibility tiers.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityFriends = "friends"
)

// ValidVisibility reports whether v is a known note visibility tier.
func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityFriends
}

// NoteModel is the content unit, owned exclusively by its creator.
type NoteModel struct {
	Base
	UserID      string `json:"user_id"     gorm:"index;not null"`
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"size:1000"`
	Content     string `json:"content"     gorm:"type:longtext"`
	Visibility  string `json:"visibility"  gorm:"index;default:'public'"`

	DownloadsCount int `json:"downloads_count" gorm:"default:0"`
	RatingsSum     int `json:"ratings_sum"     gorm:"default:0"`
	RatingsCount   int `json:"ratings_count"   gorm:"default:0"`

	Owner *UserModel   `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Tags  []TagModel   `json:"tags,omitempty"  gorm:"many2many:note_tags"`
	AI    *NoteAIModel `json:"ai,omitempty"    gorm:"foreignKey:NoteID"`
}

func (NoteModel) TableName() string { return "notes" }

// AverageRating returns the mean rating, or 0 when nothing was rated yet.
func (n *NoteModel) AverageRating() float64 {
	if n.RatingsCount == 0 {
		return 0
	}
	return float64(n.RatingsSum) / float64(n.RatingsCount)
}
