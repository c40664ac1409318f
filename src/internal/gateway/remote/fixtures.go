package remote

import (
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/internal/model"
	"tchukudu-service/src/internal/payment"

	"github.com/google/uuid"
)

func availableTransporters() []model.TransporterSearchResult {
	return []model.TransporterSearchResult{
		{
			ID:       "1",
			Name:     "Pierre Mukendi",
			Rating:   4.8,
			Distance: "0.5 km",
			Vehicle:  "Toyota Hilux",
			Price:    45,
			Location: model.Location{Latitude: -4.3276, Longitude: 15.3136},
			Phone:    "+243 812 345 678",
			Reviews:  127,
		},
		{
			ID:       "2",
			Name:     "Marie Kabila",
			Rating:   4.9,
			Distance: "1.2 km",
			Vehicle:  "Yamaha 125",
			Price:    25,
			Location: model.Location{Latitude: -4.3280, Longitude: 15.3140},
			Phone:    "+243 899 876 543",
			Reviews:  89,
		},
		{
			ID:       "3",
			Name:     "Joseph Tshisekedi",
			Rating:   4.7,
			Distance: "2.1 km",
			Vehicle:  "Mitsubishi Canter",
			Price:    67,
			Location: model.Location{Latitude: -4.3290, Longitude: 15.3150},
			Phone:    "+243 876 543 210",
			Reviews:  156,
		},
	}
}

func availableRides() []entity.RideOffer {
	return []entity.RideOffer{
		{
			OfferID:       "ride-" + uuid.NewString(),
			ClientName:    "Marie Kabongo",
			Pickup:        "Marché Central, Kinshasa",
			Destination:   "Université de Kinshasa",
			Price:         35,
			Distance:      "12 km",
			Time:          "25 min",
			VehicleType:   "motorcycle",
			ServiceType:   "standard",
			TransportType: "people",
			OfferedAt:     time.Now(),
		},
		{
			OfferID:       "ride-" + uuid.NewString(),
			ClientName:    "Client Anonymous",
			Pickup:        "Marché Central, Kinshasa",
			Destination:   "Aéroport de N'djili",
			Price:         75,
			Distance:      "25 km",
			Time:          "35 min",
			VehicleType:   "truck",
			ServiceType:   "express",
			TransportType: "goods",
			OfferedAt:     time.Now(),
		},
	}
}

func rideHistory(userID string) []entity.RideHistory {
	completedAt := time.Now().Add(-48 * time.Hour)
	return []entity.RideHistory{
		{
			RideID:          "ride-hist-1",
			ClientID:        userID,
			TransporterID:   "2",
			ClientName:      "Marie Kabongo",
			TransporterName: "Marie Kabila",
			Pickup:          "Marché Central, Kinshasa",
			Destination:     "Université de Kinshasa",
			Price:           25,
			Distance:        "12 km",
			Duration:        "25 min",
			VehicleType:     "motorcycle",
			ServiceType:     "standard",
			TransportType:   "people",
			Status:          "completed",
			CompletedAt:     &completedAt,
		},
	}
}

func paymentMethods() []payment.Method {
	return []payment.Method{
		{ID: "airtel_money", Type: payment.MethodTypeMobileMoney, Name: "Airtel Money", Icon: "📱", Description: "Paiement via Airtel Money"},
		{ID: "orange_money", Type: payment.MethodTypeMobileMoney, Name: "Orange Money", Icon: "🟠", Description: "Paiement via Orange Money"},
		{ID: "mpesa", Type: payment.MethodTypeMobileMoney, Name: "M-Pesa", Icon: "💚", Description: "Paiement via M-Pesa"},
		{ID: "visa_card", Type: payment.MethodTypeCard, Name: "Carte Visa", Icon: "💳", Description: "Paiement par carte bancaire"},
		{ID: "mastercard", Type: payment.MethodTypeCard, Name: "Mastercard", Icon: "💳", Description: "Paiement par carte bancaire"},
	}
}

func subscriptionPlans() []entity.SubscriptionPlan {
	return []entity.SubscriptionPlan{
		{
			PlanID:   "weekly",
			Name:     "Hebdomadaire",
			Price:    5,
			Duration: 7,
			Features: []string{"Accès aux courses", "Support client", "Notifications en temps réel"},
		},
		{
			PlanID:   "monthly",
			Name:     "Mensuel",
			Price:    20,
			Duration: 30,
			Features: []string{"Accès aux courses", "Support client prioritaire", "Notifications en temps réel", "Statistiques avancées"},
			Popular:  true,
		},
		{
			PlanID:   "quarterly",
			Name:     "Trimestriel",
			Price:    50,
			Duration: 90,
			Features: []string{"Accès aux courses", "Support client VIP", "Notifications en temps réel", "Statistiques avancées", "Réduction de 17%"},
		},
	}
}
