package destination

import "fmt"

var catalog = []Destination{
	{
		ID:          "1",
		Name:        "Barcelona, Spain",
		Image:       "https://images.unsplash.com/photo-1583422409516-2895a77efded?q=80&w=1470&auto=format&fit=crop",
		SafetyScore: 8.5,
		Description: "A vibrant city known for its art and architecture. The Sagrada Família and other modernist landmarks designed by Antoni Gaudí dot the city.",
	},
	{
		ID:          "2",
		Name:        "Paris, France",
		Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&w=1473&auto=format&fit=crop",
		SafetyScore: 7.8,
		Description: "The City of Light draws millions of visitors every year with its unforgettable ambiance. The city is known for its cafe culture and designer boutiques along the Rue du Faubourg Saint-Honoré.",
	},
	{
		ID:          "3",
		Name:        "Tokyo, Japan",
		Image:       "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?q=80&w=1336&auto=format&fit=crop",
		SafetyScore: 9.2,
		Description: "Tokyo is Japan's busy capital that mixes the ultramodern and the traditional, from neon-lit skyscrapers to historic temples.",
	},
	{
		ID:          "4",
		Name:        "Lisbon, Portugal",
		Image:       "https://images.unsplash.com/photo-1518310383802-640c2de311b2?q=80&w=1470&auto=format&fit=crop",
		SafetyScore: 8.3,
		Description: "Lisbon, Portugal's hilly capital, is a coastal city known for its pastel-colored buildings, tile-covered facades, and vintage trams.",
	},
	{
		ID:          "5",
		Name:        "Singapore",
		Image:       "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?q=80&w=1552&auto=format&fit=crop",
		SafetyScore: 9.5,
		Description: "Singapore is a island city-state known for its tropical climate, multicultural population, and modern skyline.",
	},
	{
		ID:          "6",
		Name:        "Zurich, Switzerland",
		Image:       "https://images.unsplash.com/photo-1515488764276-beab7607c1e6?q=80&w=1474&auto=format&fit=crop",
		SafetyScore: 9.3,
		Description: "Zurich is Switzerland's center of economic life and education. Located in the heart of Europe, the city offers a mixture of adventure, pleasure, nature, and culture.",
	},
	{
		ID:          "7",
		Name:        "New York, USA",
		Image:       "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?q=80&w=1470&auto=format&fit=crop",
		SafetyScore: 7.5,
		Description: "New York City comprises 5 boroughs sitting where the Hudson River meets the Atlantic Ocean. At its core is Manhattan, a densely populated borough that's among the world's major commercial, financial and cultural centers.",
	},
	{
		ID:          "8",
		Name:        "London, UK",
		Image:       "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?q=80&w=1470&auto=format&fit=crop",
		SafetyScore: 8.0,
		Description: "London, the capital of England and the United Kingdom, is a 21st-century city with history stretching back to Roman times. At its centre stand the imposing Houses of Parliament, the iconic 'Big Ben' clock tower and Westminster Abbey.",
	},
	{
		ID:          "9",
		Name:        "Sydney, Australia",
		Image:       "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?q=80&w=1470&auto=format&fit=crop",
		SafetyScore: 9.0,
		Description: "Sydney, capital of New South Wales and one of Australia's largest cities, is best known for its harbourfront Sydney Opera House, with a distinctive sail-like design. Massive Darling Harbour and the smaller Circular Quay port are hubs of waterside life.",
	},
}

// Placeholder images for synthesized destinations.
var synthesizedImages = []string{
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?q=80&w=1470&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=1473&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1490959231512-65fba63aa0c1?q=80&w=1470&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1506929562872-bb421503ef21?q=80&w=1368&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1454391304352-2bf4678b1a7a?q=80&w=1374&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1519046904884-53103b34b206?q=80&w=1470&auto=format&fit=crop",
}

var descriptionTemplates = []func(name string) string{
	func(n string) string {
		return fmt.Sprintf("%s offers travelers a blend of historic sites, cultural experiences, and natural beauty. Visitors can explore local landmarks, sample the distinctive cuisine, and immerse themselves in the unique atmosphere of this destination.", n)
	},
	func(n string) string {
		return fmt.Sprintf("Known for its distinctive charm, %s attracts tourists from around the world. The destination features a mix of architectural styles, vibrant local culture, and opportunities for both relaxation and adventure.", n)
	},
	func(n string) string {
		return fmt.Sprintf("%s is a destination that combines the old and the new. Travelers can discover centuries of history alongside modern attractions, making it ideal for visitors with diverse interests.", n)
	},
	func(n string) string {
		return fmt.Sprintf("Explore the wonders of %s, where travelers can experience authentic local traditions, visit significant landmarks, and enjoy the region's natural landscapes.", n)
	},
	func(n string) string {
		return fmt.Sprintf("%s welcomes visitors with its unique character and varied attractions. The destination offers something for every type of traveler, from history enthusiasts to nature lovers.", n)
	},
}

type weightedCondition struct {
	condition Condition
	weight    float64
}

// Weights sum to 100; order matters for the cumulative walk.
var conditionWeights = []weightedCondition{
	{Sunny, 30},
	{PartlyCloudy, 25},
	{Cloudy, 20},
	{Rainy, 15},
	{Stormy, 10},
}

type alertTemplate struct {
	alertType   AlertType
	title       string
	description string
	severity    Severity
}

var alertCatalog = []alertTemplate{
	{AlertWeather, "Seasonal Weather Alert", "Check local forecast before traveling as conditions may change rapidly.", SeverityLow},
	{AlertHealth, "Health Advisory", "Some vaccinations recommended for travel to this region. Consult with a healthcare provider.", SeverityMedium},
	{AlertTravel, "Travel Advisory", "Check local laws and customs before visiting. Some areas may have specific regulations.", SeverityLow},
	{AlertSecurity, "Security Notice", "Exercise normal security precautions and be aware of your surroundings.", SeverityLow},
	{AlertTransport, "Transportation Alert", "Local transportation may be affected by ongoing infrastructure projects.", SeverityLow},
	{AlertEnvironment, "Environmental Alert", "Be aware of local environmental conditions and follow sustainability guidelines.", SeverityMedium},
	{AlertPolitical, "Political Situation", "Stay informed about the local political climate which may affect travel plans.", SeverityMedium},
	{AlertEvent, "Major Event", "A significant event is taking place that may affect accommodation availability and crowds.", SeverityLow},
}

type tipCategory struct {
	name string
	tips []string
}

var tipCategories = []tipCategory{
	{"Local Transportation", []string{
		"Research public transportation options before your trip. Consider getting a transit pass for your stay.",
		"Download local transportation apps to navigate the city efficiently.",
		"Taxis may be more expensive than public transport but can be more convenient for certain destinations.",
		"Renting a bicycle can be a great way to explore the city at your own pace.",
		"Walking tours are an excellent way to discover hidden gems and learn about local history.",
	}},
	{"Cultural Customs", []string{
		"Learn about local customs and etiquette to respectfully engage with the local culture.",
		"Learn a few basic phrases in the local language - even simple greetings are appreciated.",
		"Research appropriate dress codes, especially when visiting religious sites.",
		"Be aware of tipping customs which vary significantly between countries.",
		"Respect local traditions and participate in cultural events when invited.",
	}},
	{"Safety Precautions", []string{
		"Keep your valuables secure and be aware of your surroundings, especially in crowded tourist areas.",
		"Make digital copies of important documents like your passport and travel insurance.",
		"Register with your country's embassy or consulate before traveling to remote areas.",
		"Know the local emergency numbers and location of the nearest hospital.",
		"Get travel insurance that covers both health emergencies and trip cancellations.",
	}},
	{"Local Cuisine", []string{
		"Try the local cuisine but be cautious with street food if you have a sensitive stomach.",
		"Ask locals for restaurant recommendations to find authentic dining experiences.",
		"Food tours can be a great introduction to local specialties and culinary traditions.",
		"Be aware of common allergens in local cuisine and learn how to communicate dietary restrictions.",
		"Markets are often the best place to sample a variety of local foods at reasonable prices.",
	}},
	{"Weather Considerations", []string{
		"Pack appropriate clothing for the season and be prepared for unexpected weather changes.",
		"Sunscreen and hydration are important even in cooler climates.",
		"Check the forecast daily and adjust your plans according to weather conditions.",
		"Be aware of extreme weather seasons that might affect your travel experience.",
		"Indoor activities like museums and galleries make good backup plans for rainy days.",
	}},
	{"Shopping Tips", []string{
		"Research local markets and shopping districts before your trip.",
		"Learn about haggling customs, as fixed prices aren't universal in all markets.",
		"Look for locally-made products as unique souvenirs that support the local economy.",
		"Be aware of customs regulations before purchasing items to bring home.",
		"Save receipts for valuable purchases, especially if you plan to claim tax refunds.",
	}},
}

var popularCities = []string{
	"New York", "London", "Tokyo", "Paris", "Sydney",
	"Rome", "Bangkok", "Dubai", "Singapore", "Barcelona",
	"Istanbul", "Amsterdam", "Hong Kong", "Rio de Janeiro", "Berlin",
	"Mumbai", "Cairo", "Seoul", "Mexico City", "Toronto",
	"Vienna", "Madrid", "Athens", "Prague", "Copenhagen",
	"Moscow", "Dublin", "Stockholm", "Oslo", "Helsinki",
}
