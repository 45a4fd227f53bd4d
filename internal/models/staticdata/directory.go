package staticdata

// FallbackCountries is served when the REST Countries API is unreachable.
var FallbackCountries = []string{
	"United States", "United Kingdom", "Canada", "Australia", "Germany",
	"France", "Japan", "Italy", "Spain", "Mexico", "Brazil", "India",
	"Thailand", "Netherlands", "Sweden", "Norway", "Denmark", "Switzerland",
	"Austria", "Belgium", "Portugal", "Greece", "Poland", "Czech Republic",
	"Hungary", "Ireland", "Finland", "New Zealand", "South Korea", "Singapore",
	"Bahamas", "Jamaica", "Costa Rica", "Chile", "Argentina", "Colombia",
}

// PopularCities maps a country display name to its selectable cities.
var PopularCities = map[string][]string{
	"United States": {
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
		"San Francisco", "Columbus", "Charlotte", "Fort Worth", "Indianapolis",
		"Seattle", "Denver", "Boston", "Detroit", "Nashville", "Memphis", "Portland",
		"Las Vegas", "Miami", "Atlanta", "New Orleans", "Tampa", "Orlando", "Honolulu",
	},
	"United Kingdom": {
		"London", "Birmingham", "Manchester", "Glasgow", "Liverpool", "Leeds",
		"Sheffield", "Edinburgh", "Bristol", "Cardiff", "Belfast", "Leicester",
		"Brighton", "Newcastle", "Nottingham", "Cambridge", "Oxford", "Bath", "York",
	},
	"Bahamas": {
		"Nassau", "Freeport", "Nicholls Town", "Alice Town", "Clarence Town",
		"Cockburn Town", "Cooper's Town", "Dunmore Town", "Governor's Harbour",
		"High Rock", "Marsh Harbour", "Matthew Town", "Rock Sound", "George Town",
	},
	"Canada": {
		"Toronto", "Montreal", "Vancouver", "Calgary", "Edmonton", "Ottawa",
		"Winnipeg", "Quebec City", "Hamilton", "Victoria", "Halifax", "Saskatoon",
		"Regina", "St. John's", "Fredericton", "Charlottetown",
	},
	"Germany": {
		"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart",
		"Düsseldorf", "Leipzig", "Dortmund", "Essen", "Bremen", "Dresden",
		"Hanover", "Nuremberg", "Duisburg", "Bochum",
	},
	"France": {
		"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Montpellier",
		"Strasbourg", "Bordeaux", "Lille", "Rennes", "Reims", "Toulon", "Grenoble",
		"Dijon", "Angers", "Villeurbanne", "Le Mans",
	},
	"Japan": {
		"Tokyo", "Osaka", "Kyoto", "Yokohama", "Nagoya", "Sapporo", "Fukuoka",
		"Kobe", "Hiroshima", "Sendai", "Kawasaki", "Chiba", "Nara", "Kanazawa",
		"Shizuoka", "Kumamoto", "Okayama", "Hamamatsu",
	},
	"Italy": {
		"Rome", "Milan", "Naples", "Turin", "Palermo", "Genoa", "Bologna",
		"Florence", "Venice", "Verona", "Catania", "Bari", "Messina", "Padua",
		"Trieste", "Brescia", "Parma", "Prato",
	},
	"Spain": {
		"Madrid", "Barcelona", "Valencia", "Seville", "Zaragoza", "Málaga",
		"Murcia", "Palma", "Bilbao", "Alicante", "Granada", "Córdoba", "Vigo",
		"Gijón", "L'Hospitalet", "Vitoria-Gasteiz", "A Coruña", "Elche",
	},
	"Australia": {
		"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Gold Coast",
		"Newcastle", "Canberra", "Sunshine Coast", "Wollongong", "Hobart", "Geelong",
		"Townsville", "Cairns", "Darwin", "Toowoomba",
	},
	"Mexico": {
		"Mexico City", "Guadalajara", "Monterrey", "Puebla", "Tijuana", "León",
		"Juárez", "Torreón", "Querétaro", "San Luis Potosí", "Mérida", "Mexicali",
		"Aguascalientes", "Acapulco", "Cuernavaca", "Saltillo",
	},
	"Brazil": {
		"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza", "Belo Horizonte",
		"Manaus", "Curitiba", "Recife", "Goiânia", "Belém", "Porto Alegre",
		"Guarulhos", "Campinas", "São Luís", "São Gonçalo",
	},
	"Netherlands": {
		"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Tilburg",
		"Groningen", "Almere", "Breda", "Nijmegen", "Enschede", "Haarlem",
	},
	"Switzerland": {
		"Zurich", "Geneva", "Basel", "Lausanne", "Bern", "Winterthur",
		"Lucerne", "St. Gallen", "Lugano", "Biel", "Thun", "Köniz",
	},
	"Thailand": {
		"Bangkok", "Nonthaburi", "Pak Kret", "Hat Yai", "Chiang Mai", "Phuket",
		"Pattaya", "Udon Thani", "Surat Thani", "Khon Kaen", "Nakhon Ratchasima", "Chiang Rai",
	},
	"India": {
		"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Ahmedabad", "Chennai",
		"Kolkata", "Surat", "Pune", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore",
	},
	"Jamaica": {
		"Kingston", "Spanish Town", "Portmore", "Montego Bay", "May Pen", "Mandeville",
		"Old Harbour", "Savanna-la-Mar", "Linstead", "Half Way Tree", "Port Antonio", "Ocho Rios",
	},
	"Singapore": {
		"Singapore", "Jurong West", "Woodlands", "Tampines", "Sengkang", "Hougang",
		"Yishun", "Bedok", "Ang Mo Kio", "Toa Payoh", "Choa Chu Kang", "Pasir Ris",
	},
	"New Zealand": {
		"Auckland", "Wellington", "Christchurch", "Hamilton", "Tauranga", "Napier-Hastings",
		"Dunedin", "Palmerston North", "Nelson", "Rotorua", "New Plymouth", "Whangarei",
	},
	"South Korea": {
		"Seoul", "Busan", "Incheon", "Daegu", "Daejeon", "Gwangju",
		"Suwon", "Ulsan", "Changwon", "Goyang", "Yongin", "Seongnam",
	},
}

// GenericCities covers countries without a curated list.
func GenericCities(country string) []string {
	return []string{
		country + " Capital",
		country + " City Center",
		country + " Downtown",
		country + " Main City",
		country + " Metropolitan Area",
	}
}
