package parser

import "jp-address-api/internal/models"

// assemble folds tokens into a ParsedAddress. point is the representative point of the deepest
// resolved unit, if it has one.
func assemble(tokens []Token, point *models.Coordinate) models.ParsedAddress {
	var out models.ParsedAddress
	for _, tok := range sortTokens(tokens) {
		switch tok.Kind {
		case TokenPrefecture:
			out.Prefecture = tok.Value
			out.Metadata.Depth++
		case TokenCity:
			out.City = tok.Value
			out.Metadata.Depth++
		case TokenTown:
			out.Town = tok.Value
			out.Metadata.Depth++
		case TokenRest:
			out.Rest = tok.Value
		}
	}
	if point != nil {
		lat, lng := point.Latitude, point.Longitude
		out.Metadata.Latitude = &lat
		out.Metadata.Longitude = &lng
	}
	return out
}
