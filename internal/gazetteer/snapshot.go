package gazetteer

import (
	"context"
	"slices"

	"jp-address-api/internal/models"
)

// Snapshot is an immutable in-memory gazetteer. Units keep the order in which they first appear in
// the rows it was built from; each unit's point is the mean of its rows.
type Snapshot struct {
	cities map[string][]models.City
	towns  map[string][]models.Town
}

type centroid struct {
	name     string
	lat, lon float64
	n        int
}

func (c *centroid) add(lat, lon float64) {
	c.lat += lat
	c.lon += lon
	c.n++
}

func (c *centroid) point() *models.Coordinate {
	return &models.Coordinate{Latitude: c.lat / float64(c.n), Longitude: c.lon / float64(c.n)}
}

// NewSnapshot indexes rows by prefecture and city.
func NewSnapshot(rows []models.Location) *Snapshot {
	cityOrder := map[string][]*centroid{}
	cityIndex := map[string]*centroid{}
	townOrder := map[string][]*centroid{}
	townIndex := map[string]*centroid{}

	for _, row := range rows {
		if row.Prefecture == "" || row.City == "" {
			continue
		}
		cityKey := row.Prefecture + "\x00" + row.City
		c, ok := cityIndex[cityKey]
		if !ok {
			c = &centroid{name: row.City}
			cityIndex[cityKey] = c
			cityOrder[row.Prefecture] = append(cityOrder[row.Prefecture], c)
		}
		c.add(row.Latitude, row.Longitude)

		if row.Town == "" {
			continue
		}
		townKey := cityKey + "\x00" + row.Town
		t, ok := townIndex[townKey]
		if !ok {
			t = &centroid{name: row.Town}
			townIndex[townKey] = t
			townOrder[cityKey] = append(townOrder[cityKey], t)
		}
		t.add(row.Latitude, row.Longitude)
	}

	s := &Snapshot{
		cities: make(map[string][]models.City, len(cityOrder)),
		towns:  make(map[string][]models.Town, len(townOrder)),
	}
	for prefecture, cs := range cityOrder {
		for _, c := range cs {
			s.cities[prefecture] = append(s.cities[prefecture], models.City{Name: c.name, Coordinate: c.point()})
		}
	}
	for key, ts := range townOrder {
		for _, t := range ts {
			s.towns[key] = append(s.towns[key], models.Town{Name: t.name, Coordinate: t.point()})
		}
	}
	return s
}

// ListCities returns the cities of prefecture.
func (s *Snapshot) ListCities(_ context.Context, prefecture string) ([]models.City, error) {
	cities, ok := s.cities[prefecture]
	if !ok {
		return nil, &Error{Kind: ErrorNotFound, Op: citiesOp(prefecture)}
	}
	return slices.Clone(cities), nil
}

// ListTowns returns the towns of city in prefecture.
func (s *Snapshot) ListTowns(_ context.Context, prefecture, city string) ([]models.Town, error) {
	towns, ok := s.towns[prefecture+"\x00"+city]
	if !ok {
		return nil, &Error{Kind: ErrorNotFound, Op: townsOp(prefecture, city)}
	}
	return slices.Clone(towns), nil
}
