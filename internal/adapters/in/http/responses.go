package http

import (
	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"
)

func shipmentResponse(s *shipment.Shipment) api.Shipment {
	return api.Shipment{
		Id:          s.ID().Bytes(),
		CreatedBy:   s.CreatedBy().Bytes(),
		Company:     s.CompanyID().Bytes(),
		Destination: s.Destination().String(),
		Weight:      s.Weight(),
		Price:       s.Price(),
		Status:      s.Status().String(),
		CreatedAt:   s.CreatedAt(),
	}
}

func shipmentViewsResponse(views []queries.ShipmentView) []api.Shipment {
	response := make([]api.Shipment, len(views))
	for i, v := range views {
		response[i] = api.Shipment{
			Id:              v.ID.Bytes(),
			CreatedBy:       v.CreatedBy.Bytes(),
			OwnerEmail:      optional(v.OwnerEmail),
			Company:         v.CompanyID.Bytes(),
			CompanyName:     optional(v.CompanyName),
			Destination:     v.Destination.String(),
			DestinationName: optional(v.DestinationName),
			Weight:          v.Weight,
			Price:           v.Price,
			Status:          v.Status.String(),
			CreatedAt:       v.CreatedAt,
		}
	}
	return response
}

func userResponse(u *user.User) api.User {
	count := len(u.ShipmentIDs())
	return api.User{
		Id:            u.ID().Bytes(),
		Email:         u.Email(),
		IsAdmin:       u.IsAdmin(),
		ShipmentCount: &count,
		CreatedAt:     u.CreatedAt(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
