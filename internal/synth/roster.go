package synth

// DJ is one performer of the roster.
type DJ struct {
	Name   string
	Genre  string
	Events int // dated events generated before the random top-up
}

// Venue is a place an event can be held. Venues in the same city share
// coordinates so city-level counts line up on the map.
type Venue struct {
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// EventTypes are the kinds of events drawn for every row.
var EventTypes = []string{"Festival", "Club Gig", "Concert"}

// Roster is the default performer list. Headliners get more dates.
var Roster = []DJ{
	{"Carl Cox", "Techno", 15},
	{"Amelie Lens", "Techno", 12},
	{"Charlotte de Witte", "Techno", 10},
	{"Nina Kraviz", "Techno", 8},
	{"David Guetta", "EDM", 7},
	{"Adam Beyer", "Techno", 5},
	{"Armin van Buuren", "Trance", 5},
	{"Deadmau5", "Progressive House", 4},
	{"Solomun", "Deep House", 4},
	{"Richie Hawtin", "Techno", 4},
	{"Peggy Gou", "House", 3},
	{"The Martinez Brothers", "House", 3},
	{"Dixon", "Deep House", 3},
	{"Black Coffee", "Afro House", 3},
	{"Skrillex", "Dubstep", 3},
	{"Eric Prydz", "Progressive House", 3},
	{"Jamie Jones", "Tech House", 2},
	{"Marco Carola", "Techno", 2},
	{"Disclosure", "House", 2},
	{"Paul Kalkbrenner", "Techno", 2},
	{"Reinier Zonneveld", "Techno", 2},
	{"Boris Brejcha", "Minimal Techno", 2},
	{"Netsky", "Drum & Bass", 2},
	{"Flume", "Future Bass", 2},
	{"Bicep", "Electronic", 2},
	{"Tiësto", "EDM", 2},
	{"Four Tet", "Electronic", 2},
	{"CamelPhat", "Tech House", 2},
	{"Bonobo", "Electronica", 2},
	{"RÜFÜS DU SOL", "Live Electronic", 2},
	{"Jamie xx", "Electronic", 2},
	{"Fisher", "House", 2},
	{"Sasha & John Digweed", "Progressive House", 2},
	{"Martin Garrix", "EDM", 2},
}

// Venues is the default venue list.
var Venues = []Venue{
	{"Bayfront Park", "Miami", "USA", 25.7801, -80.1826},
	{"Gashouder", "Amsterdam", "Netherlands", 52.3867, 4.8731},
	{"United Center", "Chicago", "USA", 41.8807, -87.6742},
	{"Empire Polo Club", "Indio", "USA", 33.6803, -116.2377},
	{"Pacha", "Ibiza", "Spain", 38.9185, 1.4434},
	{"Boom", "Boom", "Belgium", 51.0926, 4.3717},
	{"Printworks", "London", "UK", 51.4985, -0.0429},
	{"Fira Montjuïc", "Barcelona", "Spain", 41.3722, 2.1540},
	{"Warung Beach Club", "Itajaí", "Brazil", -26.9536, -48.6301},
	{"Hart Plaza", "Detroit", "USA", 42.3296, -83.0458},
	{"Output", "New York", "USA", 40.7213, -73.9577},
	{"Exchange LA", "Los Angeles", "USA", 34.0486, -118.2551},
	{"Wembley Arena", "London", "UK", 51.4985, -0.0429},
	{"Maimarkthalle", "Mannheim", "Germany", 49.4707, 8.5140},
	{"Hi Ibiza", "Ibiza", "Spain", 38.9185, 1.4434},
	{"Las Vegas Motor Speedway", "Las Vegas", "USA", 36.2733, -115.0119},
	{"DC10", "Ibiza", "Spain", 38.9185, 1.4434},
	{"Petrovaradin Fortress", "Novi Sad", "Serbia", 45.2520, 19.8610},
	{"Red Rocks Amphitheatre", "Morrison", "USA", 39.6654, -105.2057},
	{"Berghain", "Berlin", "Germany", 52.5111, 13.4416},
}
