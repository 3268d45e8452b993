// Package avwx provides a client for the AVWX aviation weather REST API.
//
// AVWX serves parsed METAR, TAF, PIREP, NOTAM, AIRMET/SIGMET, NBM and GFS
// reports along with station data. This package builds the request URLs,
// authenticates with an API key and decodes every response into typed
// values.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := avwx.NewClient(
//		"your-api-key",
//		logger,
//		avwx.WithTimeout(10*time.Second),
//		avwx.WithMaxRetries(2),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	metar, err := client.GetMetar(ctx, "KJFK", avwx.ReportParams{Options: "translate"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(metar.FlightRules, metar.Raw)
//
// Boolean and numeric parameters are Optional so that an explicit false or
// zero is sent:
//
//	stations, err := client.GetNearStations(ctx, "40.6,-73.8", avwx.ListParams{
//		N:         avwx.Some(5),
//		Reporting: avwx.Some(false),
//	})
//
// # Partial results
//
// Responses are decoded field by field. A field whose value does not match
// its declared type is left unset and recorded as a warning on the result
// instead of failing the call:
//
//	if metar.IsPartial() {
//		for _, w := range metar.Warnings {
//			log.Println(w)
//		}
//	}
//
// # Error Handling
//
// Non-2xx responses are returned as typed errors:
//
//   - StationError (400): unknown station or invalid parameter, wraps ErrValidation
//   - AuthError (401, 403): missing or rejected key, wraps ErrUnauthorized
//   - BadStatusError (other): wraps ErrBadStatus
//
// All three implement StatusError:
//
//	var se avwx.StatusError
//	if errors.As(err, &se) {
//		log.Printf("AVWX returned %d", se.HTTPStatus())
//	}
//	if errors.Is(err, avwx.ErrUnauthorized) {
//		// refresh the key
//	}
package avwx
