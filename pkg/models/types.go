package models

type BookingRequest struct {
	PassengerName      string
	DepartureCity      string
	DestinationCity    string
	DepartureDate      string
	NumberOfPassengers int
}
