package quest

import "time"

// Category IDs used by the built-in fixtures.
const (
	CategorySport     = 1
	CategoryCooking   = 2
	CategoryVideoGame = 3
	CategoryReading   = 4
)

// Theme colors of the built-in categories.
var (
	SportColor     = ARGB(0xFF, 0xFF, 0x43, 0x43)
	CookingColor   = ARGB(0xFF, 0xFF, 0x85, 0x43)
	VideoGameColor = ARGB(0xFF, 0xC4, 0x43, 0xFF)
	ReadingColor   = ARGB(0xFF, 0x42, 0xD2, 0x42)
)

// Categories returns the built-in demo categories.
func Categories() []Category {
	return []Category{
		{ID: CategorySport, Name: "Sport", Icon: "icon_sport", Color: SportColor},
		{ID: CategoryCooking, Name: "Cuisine", Icon: "icon_cuisine", Color: CookingColor},
		{ID: CategoryVideoGame, Name: "Jeux Vidéo", Icon: "icon_jeux_video", Color: VideoGameColor},
		{ID: CategoryReading, Name: "Lecture", Icon: "icon_lecture", Color: ReadingColor},
	}
}

// Quests returns the built-in demo quests, three per category.
func Quests() []Quest {
	return []Quest{
		{
			ID: 1, CategoryID: CategorySport,
			Name:               "Courir 5 km",
			Description:        "Fais un footing de 5 km à ton rythme.",
			RequiredPreference: 2, XPReward: 150,
			Duration:         40 * time.Minute,
			WeatherDependent: true,
		},
		{
			ID: 2, CategoryID: CategorySport,
			Name:               "30 pompes",
			Description:        "Enchaîne 30 pompes, en plusieurs séries si besoin.",
			RequiredPreference: 1, XPReward: 80,
			Duration: 10 * time.Minute,
		},
		{
			ID: 3, CategoryID: CategorySport,
			Name:               "Marcher 10 000 pas",
			Description:        "Atteins 10 000 pas dans la journée.",
			RequiredPreference: 1, XPReward: 120,
			Duration:         90 * time.Minute,
			WeatherDependent: true,
		},
		{
			ID: 4, CategoryID: CategoryCooking,
			Name:               "Cuisiner un plat maison",
			Description:        "Prépare un repas complet sans plat préparé.",
			RequiredPreference: 2, XPReward: 130,
			Duration: time.Hour,
		},
		{
			ID: 5, CategoryID: CategoryCooking,
			Name:               "Petit-déjeuner équilibré",
			Description:        "Compose un petit-déjeuner avec un fruit, une céréale et une protéine.",
			RequiredPreference: 1, XPReward: 60,
			Duration: 15 * time.Minute,
		},
		{
			ID: 6, CategoryID: CategoryCooking,
			Name:               "Tester une nouvelle recette",
			Description:        "Choisis une recette que tu n'as jamais faite et lance-toi.",
			RequiredPreference: 3, XPReward: 200,
			Duration: 90 * time.Minute,
		},
		{
			ID: 7, CategoryID: CategoryVideoGame,
			Name:               "Terminer un niveau difficile",
			Description:        "Termine le niveau qui te bloque depuis des jours.",
			RequiredPreference: 2, XPReward: 100,
			Duration: 45 * time.Minute,
		},
		{
			ID: 8, CategoryID: CategoryVideoGame,
			Name:               "Jeu de réflexion",
			Description:        "Joue 30 minutes à un jeu de puzzle ou de stratégie.",
			RequiredPreference: 1, XPReward: 70,
			Duration: 30 * time.Minute,
		},
		{
			ID: 9, CategoryID: CategoryVideoGame,
			Name:               "Découvrir un jeu indépendant",
			Description:        "Lance un jeu indépendant que tu ne connais pas encore.",
			RequiredPreference: 1, XPReward: 90,
			Duration: time.Hour,
		},
		{
			ID: 10, CategoryID: CategoryReading,
			Name:               "Lire 20 pages",
			Description:        "Avance de 20 pages dans ton livre du moment.",
			RequiredPreference: 1, XPReward: 80,
			Duration: 30 * time.Minute,
		},
		{
			ID: 11, CategoryID: CategoryReading,
			Name:               "Lire un article de fond",
			Description:        "Lis un long article sur un sujet qui t'est inconnu.",
			RequiredPreference: 2, XPReward: 60,
			Duration: 20 * time.Minute,
		},
		{
			ID: 12, CategoryID: CategoryReading,
			Name:               "Lire au parc",
			Description:        "Emporte un livre et lis dehors pendant une heure.",
			RequiredPreference: 2, XPReward: 140,
			Duration:         time.Hour,
			WeatherDependent: true,
		},
	}
}
