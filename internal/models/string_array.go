package models

// StringSlice is stored as a JSON array via the gorm json serializer.
type StringSlice []string
