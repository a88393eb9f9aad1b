package catalog

import "github.com/vetipro/quoteapi/internal/domain"

// MenuEntry is one navigable entry of a menu group. The pack id is the last
// segment of the path.
type MenuEntry struct {
	Title       string
	Path        string
	Description string
	Image       string
}

// MenuGroup is a top-level menu section.
type MenuGroup struct {
	Title    string
	SubItems []MenuEntry
}

// packsMenuTitle is the menu group the pack catalog is derived from.
const packsMenuTitle = "Nos packs Complet"

var defaultMenu = []MenuGroup{
	{
		Title: packsMenuTitle,
		SubItems: []MenuEntry{
			{
				Title:       "Pack Restaurant",
				Path:        "/packs/restaurant",
				Description: "Tenue complète pour les équipes de restaurant",
				Image:       "/Packs/PackRestaurant.jpg",
			},
			{
				Title:       "Pack Café",
				Path:        "/packs/cafe",
				Description: "Tenue complète pour les équipes de café",
				Image:       "/Packs/PackCafe.jpg",
			},
			{
				Title:       "Pack Hôtellerie",
				Path:        "/packs/hotel",
				Description: "Tenue complète pour le personnel hôtelier",
				Image:       "/Packs/PackHotel.jpg",
			},
			{
				Title:       "Pack Médecin",
				Path:        "/packs/medecin",
				Description: "Tenue complète pour le personnel médical",
				Image:       "/Packs/PackMedecin.jpg",
			},
		},
	},
}

var defaultItemTable = map[string][]domain.PackItem{
	"restaurant": {
		{
			ID:               "veste-cuisine-1",
			Name:             "Veste de Chef",
			Description:      "Veste professionnelle pour cuisine avec finitions premium",
			Image:            "/VetementDeCuisine/VesteDeChef.jpg",
			Price:            129.99,
			IsPersonalizable: true,
		},
		{
			ID:               "tablier-cuisine-1",
			Name:             "Tablier Professionnel",
			Description:      "Protection robuste pour la cuisine avec poches multiples",
			Image:            "/VetementDeCuisine/TablierDeChef.jpg",
			Price:            79.99,
			IsPersonalizable: true,
		},
		{
			ID:          "pantalon-cuisine-1",
			Name:        "Pantalon de Cuisine",
			Description: "Confort et durabilité pour un usage intensif",
			Image:       "/VetementDeCuisine/PontalonDeChef.jpg",
			Price:       99.99,
		},
		{
			ID:          "chaussures-cuisine-1",
			Name:        "Chaussures de Sécurité",
			Description: "Antidérapantes et résistantes pour la sécurité en cuisine",
			Image:       "/ChausureDeTravail/ChaussureDeCuisine.jpg",
			Price:       129.99,
		},
	},
	"cafe": {
		{
			ID:               "tablier-cuisine-1",
			Name:             "Tablier Barista",
			Description:      "Protection élégante avec espace pour accessoires",
			Image:            "/VetementDeCuisine/TablierDeChef.jpg",
			Price:            89.99,
			IsPersonalizable: true,
		},
		{
			ID:               "veste-hotel-1",
			Name:             "Uniforme de Service",
			Description:      "Tenue professionnelle élégante pour service en salle",
			Image:            "/VetementServiceHotellerie/UniformeDeService.jpg",
			Price:            119.99,
			IsPersonalizable: true,
		},
		{
			ID:          "chaussures-cuisine-1",
			Name:        "Chaussures Confort",
			Description: "Pour le service de longue durée, confort maximal",
			Image:       "/ChausureDeTravail/ChaussureDeCuisine.jpg",
			Price:       109.99,
		},
	},
	"hotel": {
		{
			ID:               "tenue-accueil-1",
			Name:             "Tenue d'Accueil",
			Description:      "Première impression impeccable avec finitions de qualité",
			Image:            "/VetementServiceHotellerie/TenueDacceuilHotelBanner.jpg",
			Price:            159.99,
			IsPersonalizable: true,
		},
		{
			ID:               "veste-hotel-1",
			Name:             "Uniforme Chambre",
			Description:      "Pour le personnel d'entretien, pratique et durable",
			Image:            "/VetementServiceHotellerie/UniformeDeService.jpg",
			Price:            129.99,
			IsPersonalizable: true,
		},
		{
			ID:               "veste-cuisine-1",
			Name:             "Vêtements Restaurant",
			Description:      "Pour le restaurant d'hôtel, style et confort",
			Image:            "/VetementDeCuisine/VesteDeChef.jpg",
			Price:            139.99,
			IsPersonalizable: true,
		},
	},
	"medecin": {
		{
			ID:               "blouse-medicale-1",
			Name:             "Blouse Médicale",
			Description:      "Pour les médecins, qualité supérieure antimicrobienne",
			Image:            "/VetementDeTravail/BlouseMedical.jpg",
			Price:            149.99,
			IsPersonalizable: true,
		},
		{
			ID:               "tunique-medicale-1",
			Name:             "Tunique Médicale",
			Description:      "Pour les infirmiers, confort et praticité",
			Image:            "/VetementDeTravail/TuniqueMedical.png",
			Price:            119.99,
			IsPersonalizable: true,
		},
		{
			ID:          "pantalon-medical-1",
			Name:        "Pantalon Médical",
			Description: "Confort toute la journée avec poches multiples",
			Image:       "/VetementDeTravail/CombinaionDeTravail.jpg",
			Price:       99.99,
		},
	},
}

var defaultPriceTable = map[string]float64{
	"restaurant": 399.99,
	"cafe":       299.99,
	"hotel":      459.99,
	"medecin":    349.99,
}

const defaultDiscount = "15%"
