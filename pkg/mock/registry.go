// Package mock derives field resolvers that produce synthetic data from
// generator annotations embedded in schema field descriptions. An annotation
// is a two-part reference like "name.firstName" that points into a Registry.
package mock

import (
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Generator produces one synthetic value per call. Generators take no
// arguments; the value should suit the annotated field's declared type,
// though nothing enforces that here.
type Generator func() any

// Registry is a two-level lookup table from namespace to function name to
// generator. Lookups fail closed: an unknown namespace or function is
// reported, never resolved reflectively.
type Registry map[string]map[string]Generator

// Resolve looks up a generator by namespace and function name.
func (r Registry) Resolve(namespace, function string) (Generator, bool) {
	fns, ok := r[namespace]
	if !ok {
		return nil, false
	}
	gen, ok := fns[function]
	return gen, ok
}

// Namespaces returns all namespace names in sorted order.
func (r Registry) Namespaces() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Functions returns the function names of a namespace in sorted order.
func (r Registry) Functions(namespace string) []string {
	var names []string
	for name := range r[namespace] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Faker builds the default registry, backed by gofakeit. The namespace and
// function names follow the faker.js API because that is the annotation
// convention schemas in the wild use ("name.firstName", "random.uuid", ...).
func Faker() Registry {
	return Registry{
		"name": {
			"firstName": func() any { return gofakeit.FirstName() },
			"lastName":  func() any { return gofakeit.LastName() },
			"findName":  func() any { return gofakeit.Name() },
			"jobTitle":  func() any { return gofakeit.JobTitle() },
		},
		"internet": {
			"email":      func() any { return gofakeit.Email() },
			"userName":   func() any { return gofakeit.Username() },
			"url":        func() any { return gofakeit.URL() },
			"domainName": func() any { return gofakeit.DomainName() },
			"ip":         func() any { return gofakeit.IPv4Address() },
			"userAgent":  func() any { return gofakeit.UserAgent() },
			"password":   func() any { return gofakeit.Password(true, true, true, false, false, 16) },
		},
		"address": {
			"city":          func() any { return gofakeit.City() },
			"country":       func() any { return gofakeit.Country() },
			"state":         func() any { return gofakeit.State() },
			"zipCode":       func() any { return gofakeit.Zip() },
			"streetAddress": func() any { return gofakeit.Street() },
			"latitude":      func() any { return gofakeit.Latitude() },
			"longitude":     func() any { return gofakeit.Longitude() },
		},
		"phone": {
			"phoneNumber": func() any { return gofakeit.PhoneFormatted() },
		},
		"company": {
			"companyName": func() any { return gofakeit.Company() },
			"catchPhrase": func() any { return gofakeit.Phrase() },
			"bs":          func() any { return gofakeit.BS() },
		},
		"lorem": {
			"word":      func() any { return gofakeit.Word() },
			"sentence":  func() any { return gofakeit.Sentence(8) },
			"paragraph": func() any { return gofakeit.Paragraph(1, 4, 10, " ") },
		},
		"random": {
			"uuid":         func() any { return uuid.NewString() },
			"number":       func() any { return gofakeit.Number(0, 1000) },
			"boolean":      func() any { return gofakeit.Bool() },
			"word":         func() any { return gofakeit.Word() },
			"alphaNumeric": func() any { return gofakeit.LetterN(8) },
		},
		"date": {
			"past":   func() any { return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format(time.RFC3339) },
			"future": func() any { return gofakeit.DateRange(time.Now(), time.Now().AddDate(1, 0, 0)).Format(time.RFC3339) },
			"recent": func() any { return gofakeit.DateRange(time.Now().Add(-72*time.Hour), time.Now()).Format(time.RFC3339) },
		},
		"commerce": {
			"productName": func() any { return gofakeit.ProductName() },
			"price":       func() any { return fmt.Sprintf("%.2f", gofakeit.Price(1, 100)) },
			"color":       func() any { return gofakeit.Color() },
		},
		"finance": {
			"amount":           func() any { return fmt.Sprintf("%.2f", gofakeit.Price(1, 10000)) },
			"account":          func() any { return gofakeit.AchAccount() },
			"creditCardNumber": func() any { return gofakeit.CreditCardNumber(nil) },
		},
		"image": {
			"imageUrl": func() any { return gofakeit.ImageURL(640, 480) },
			"avatar":   func() any { return gofakeit.ImageURL(128, 128) },
		},
		"hacker": {
			"phrase": func() any { return gofakeit.HackerPhrase() },
		},
	}
}
