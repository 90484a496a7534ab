package library

// Category is the content category of a library, matching the content_type
// values accepted in the desired-state document.
type Category string

const (
	CategoryMovies Category = "movies"
	CategoryShows  Category = "tvshows"
	CategoryMusic  Category = "music"
	CategoryBooks  Category = "books"
)

var collectionTypes = map[Category]string{
	CategoryMovies: "movies",
	CategoryShows:  "tvshows",
	CategoryMusic:  "music",
	CategoryBooks:  "books",
}

var typeNames = map[Category]string{
	CategoryMovies: "Movie",
	CategoryShows:  "Series",
	CategoryMusic:  "Audio",
	CategoryBooks:  "Book",
}

// CollectionType maps the category to the server's collection type value.
// Unknown categories fall back to movies.
func (c Category) CollectionType() string {
	if value, ok := collectionTypes[c]; ok {
		return value
	}
	return collectionTypes[CategoryMovies]
}

// TypeName maps the category to the display name used to tag TypeOptions.
// Unknown categories fall back to Movie.
func (c Category) TypeName() string {
	if value, ok := typeNames[c]; ok {
		return value
	}
	return typeNames[CategoryMovies]
}
