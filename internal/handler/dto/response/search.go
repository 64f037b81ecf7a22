package response

import (
	"car-rental-api/internal/domain/offer"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const NoAvailableCarsMessage = "No available cars"

type OfferResponse struct {
	VehicleID     int64  `json:"vehicleId"`
	CarModelName  string `json:"carModelName"`
	ShopName      string `json:"shopName"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Price         int64  `json:"price"`
}

type SearchCarsResponse struct {
	SessionID string          `json:"sessionId,omitempty"`
	Message   string          `json:"message,omitempty"`
	Offers    []OfferResponse `json:"offers"`
}

type OfferDetailResponse struct {
	OfferResponse
	UserName    string `json:"userName"`
	UserAddress string `json:"userAddress"`
	UserEmail   string `json:"userEmail"`
}

func FromOffer(o offer.Offer) OfferResponse {
	var resp OfferResponse
	// Identity, names and price come from the offer's getters.
	_ = copier.Copy(&resp, o)
	resp.DepartureDate = o.Period().Start().Format(reservation.DateLayout)
	resp.ReturnDate = o.Period().End().Format(reservation.DateLayout)
	return resp
}

func FromSearchResult(result *queries.SearchResult) SearchCarsResponse {
	resp := SearchCarsResponse{
		SessionID: result.SessionID,
		Offers:    make([]OfferResponse, 0, len(result.Offers)),
	}
	if len(result.Offers) == 0 {
		resp.Message = NoAvailableCarsMessage
		return resp
	}
	for _, o := range result.Offers {
		resp.Offers = append(resp.Offers, FromOffer(o))
	}
	return resp
}

func FromOfferDetail(view *queries.OfferDetailView) OfferDetailResponse {
	return OfferDetailResponse{
		OfferResponse: FromOffer(view.Offer),
		UserName:      view.User.Username,
		UserAddress:   view.User.Address,
		UserEmail:     view.User.Email,
	}
}
