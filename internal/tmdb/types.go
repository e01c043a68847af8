package tmdb

// Item is a catalog entry as it appears in TMDB list responses (search,
// discover, popular, recommendations). Movie and TV payloads share the shape;
// movies fill Title/ReleaseDate, series fill Name/FirstAirDate.
type Item struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
}

type Page struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Detail is the full record for a single item, with videos and credits
// appended.
type Detail struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title,omitempty"`
	Name             string     `json:"name,omitempty"`
	Overview         string     `json:"overview"`
	PosterPath       string     `json:"poster_path"`
	BackdropPath     string     `json:"backdrop_path"`
	ReleaseDate      string     `json:"release_date,omitempty"`
	FirstAirDate     string     `json:"first_air_date,omitempty"`
	Runtime          int        `json:"runtime,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	VoteAverage      float64    `json:"vote_average"`
	Genres           []Genre    `json:"genres"`
	Videos           *VideoList `json:"videos,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
}

// DisplayTitle returns whichever of Title/Name the payload filled.
func (d *Detail) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// GenreVocabulary combines the movie and TV genre lists.
type GenreVocabulary struct {
	MovieGenres []Genre `json:"movie_genres"`
	TVGenres    []Genre `json:"tv_genres"`
}

type Provider struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

type CountryProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate,omitempty"`
	Rent     []Provider `json:"rent,omitempty"`
	Buy      []Provider `json:"buy,omitempty"`
}

type WatchProviders struct {
	Results map[string]CountryProviders `json:"results"`
}

type personSearchResponse struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}
