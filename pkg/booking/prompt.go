package booking

import (
	"fmt"
	"io"

	"github.com/yuriiter/flightbook/pkg/models"
	"github.com/yuriiter/flightbook/pkg/utils"
)

const (
	welcomeBanner   = "Welcome to the Flight Booking App!"
	summaryHeader   = "Booking Summary:"
	confirmationMsg = "Booking confirmed. Have a safe flight!"
	errorMsg        = "Error reading input. Exiting."
)

type Prompt struct {
	in  Reader
	out io.Writer
}

func NewPrompt(in Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

func (p *Prompt) ask(field, label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadLine()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", field, err)
	}
	utils.DebugLog("Prompt: read %s (%d bytes)", field, len(line))
	return line, nil
}

func (p *Prompt) Collect() (*models.BookingRequest, error) {
	var (
		req models.BookingRequest
		err error
	)

	if req.PassengerName, err = p.ask("passenger name", "Enter your name: "); err != nil {
		return nil, err
	}
	if req.DepartureCity, err = p.ask("departure city", "Enter departure city: "); err != nil {
		return nil, err
	}
	if req.DestinationCity, err = p.ask("destination city", "Enter destination city: "); err != nil {
		return nil, err
	}
	if req.DepartureDate, err = p.ask("departure date", "Enter departure date (YYYY-MM-DD): "); err != nil {
		return nil, err
	}

	count, err := p.ask("number of passengers", "Enter number of passengers: ")
	if err != nil {
		return nil, err
	}
	if req.NumberOfPassengers, err = utils.ParsePassengerCount(count); err != nil {
		return nil, fmt.Errorf("reading number of passengers: %w", err)
	}

	return &req, nil
}

func WriteSummary(w io.Writer, req *models.BookingRequest) error {
	_, err := fmt.Fprintf(w,
		"\n%s\nPassenger Name: %s\nDeparture City: %s\nDestination City: %s\nDeparture Date: %s\nNumber of Passengers: %d\n%s\n",
		summaryHeader,
		req.PassengerName,
		req.DepartureCity,
		req.DestinationCity,
		req.DepartureDate,
		req.NumberOfPassengers,
		confirmationMsg,
	)
	return err
}

// Run prints the summary or the error line; the returned error keeps the cause.
func (p *Prompt) Run() error {
	if _, err := fmt.Fprintln(p.out, welcomeBanner); err != nil {
		return err
	}

	req, err := p.Collect()
	if err != nil {
		utils.DebugLog("Prompt: aborting: %v", err)
		if _, werr := fmt.Fprintln(p.out, errorMsg); werr != nil {
			return werr
		}
		return err
	}

	return WriteSummary(p.out, req)
}
