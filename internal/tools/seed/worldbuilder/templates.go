package worldbuilder

import "github.com/ascendlifequest/questseed/internal/quest"

type questTemplate struct {
	name        string
	description string
	minutes     int
	outdoor     bool
}

var durationSteps = []int{10, 15, 20, 30, 45, 60, 90}

var fallbackDescriptions = []string{
	"Consacre un moment à cette activité aujourd'hui.",
	"Relève ce défi avant la fin de la journée.",
	"Prends le temps de t'y mettre, même un peu.",
}

var categoryTemplates = map[int][]questTemplate{
	quest.CategorySport: {
		{name: "Courir 3 km", description: "Un petit footing pour se dégourdir les jambes.", minutes: 25, outdoor: true},
		{name: "Séance de gainage", description: "Enchaîne planches et gainage latéral.", minutes: 15},
		{name: "Sortie vélo", description: "Pars pour une balade à vélo dans ton quartier.", minutes: 60, outdoor: true},
		{name: "Étirements du matin", description: "Étire-toi en douceur dès le réveil.", minutes: 10},
		{name: "Monter les escaliers", description: "Prends les escaliers plutôt que l'ascenseur toute la journée.", minutes: 10},
		{name: "Séance de yoga", description: "Suis une séance de yoga complète.", minutes: 45},
		{name: "Nager 20 longueurs", description: "Va à la piscine et enchaîne 20 longueurs.", minutes: 45},
		{name: "Randonnée", description: "Découvre un sentier près de chez toi.", minutes: 120, outdoor: true},
	},
	quest.CategoryCooking: {
		{name: "Préparer une soupe", description: "Cuisine une soupe avec des légumes de saison.", minutes: 45},
		{name: "Pain maison", description: "Pétris et cuis ton propre pain.", minutes: 180},
		{name: "Repas sans viande", description: "Compose un repas entièrement végétarien.", minutes: 40},
		{name: "Batch cooking", description: "Prépare tes repas pour les trois prochains jours.", minutes: 120},
		{name: "Dessert maison", description: "Réalise un dessert sans préparation industrielle.", minutes: 60},
		{name: "Salade composée", description: "Assemble une salade avec au moins cinq ingrédients.", minutes: 20},
		{name: "Cuisine du monde", description: "Découvre une recette d'un pays que tu ne connais pas.", minutes: 75},
	},
	quest.CategoryVideoGame: {
		{name: "Finir une quête annexe", description: "Termine une quête annexe laissée de côté.", minutes: 40},
		{name: "Partie en coopération", description: "Joue une partie en coopération avec un ami.", minutes: 60},
		{name: "Battre son record", description: "Améliore ton meilleur score sur un jeu au choix.", minutes: 30},
		{name: "Jeu rétro", description: "Rejoue à un classique de ton enfance.", minutes: 45},
		{name: "Obtenir un succès", description: "Débloque un succès ou un trophée difficile.", minutes: 60},
		{name: "Speedrun d'un niveau", description: "Termine un niveau le plus vite possible.", minutes: 20},
	},
	quest.CategoryReading: {
		{name: "Lire un chapitre", description: "Lis un chapitre entier de ton livre.", minutes: 25},
		{name: "Lire une nouvelle", description: "Découvre une nouvelle d'un auteur inconnu.", minutes: 40},
		{name: "Bande dessinée", description: "Lis un album de bande dessinée.", minutes: 30},
		{name: "Lecture en terrasse", description: "Installe-toi dehors avec un livre.", minutes: 45, outdoor: true},
		{name: "Poésie du jour", description: "Lis trois poèmes et retiens ton préféré.", minutes: 10},
		{name: "Visite à la bibliothèque", description: "Emprunte un livre à la bibliothèque municipale.", minutes: 60, outdoor: true},
		{name: "Lire en anglais", description: "Lis dix pages d'un livre en version originale.", minutes: 30},
	},
}
