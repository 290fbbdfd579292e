package turfwar

// DemoRoster returns the fixed starting roster every new session is
// seeded with. user_1 is the controlled player; the rest are rivals
// with pre-claimed blocks around downtown San Francisco. Statuses are
// left zero; NewSession derives them.
func DemoRoster() []Player {
	return []Player{
		{
			ID: "user_1", Name: "Player One", Color: "#3357FF", Score: 1250,
			Territory: Territory{Paths: []Path{{
				{Lat: 37.78, Lng: -122.42},
				{Lat: 37.78, Lng: -122.41},
				{Lat: 37.77, Lng: -122.41},
				{Lat: 37.77, Lng: -122.42},
			}}},
		},
		{
			ID: "user_2", Name: "CyberNomad", Color: "#FF5733", Score: 980,
			Territory: Territory{Paths: []Path{{
				{Lat: 37.79, Lng: -122.43},
				{Lat: 37.79, Lng: -122.42},
				{Lat: 37.78, Lng: -122.42},
				{Lat: 37.78, Lng: -122.43},
			}}},
		},
		{
			ID: "user_3", Name: "ShadowStrider", Color: "#33FF57", Score: 1100,
			Territory: Territory{Paths: []Path{{
				{Lat: 37.76, Lng: -122.41},
				{Lat: 37.76, Lng: -122.40},
				{Lat: 37.75, Lng: -122.40},
				{Lat: 37.75, Lng: -122.41},
			}}},
		},
		{
			ID: "user_4", Name: "PixelProwler", Color: "#FF33A1", Score: 750,
			Territory: Territory{Paths: []Path{{
				{Lat: 37.77, Lng: -122.44},
				{Lat: 37.77, Lng: -122.43},
				{Lat: 37.76, Lng: -122.43},
				{Lat: 37.76, Lng: -122.44},
			}}},
		},
	}
}

// DemoActivePlayerID is the controlled player in DemoRoster.
const DemoActivePlayerID = "user_1"
