package models

// Location описывает геопозицию в формате GeoJSON Point.
// Поля Lat/Lng дублируют Coordinates для удобства UI-слоя,
// обе формы заполняются только через NewLocation и не расходятся.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [долгота, широта]
	Area        string    `bson:"area,omitempty" json:"area,omitempty"`
	Lat         float64   `bson:"lat" json:"lat"`
	Lng         float64   `bson:"lng" json:"lng"`
}

// NewLocation создает Location, синхронно заполняя GeoJSON-координаты и lat/lng
func NewLocation(lat, lng float64, area string) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
		Area:        area,
		Lat:         lat,
		Lng:         lng,
	}
}

// IsZero сообщает, заполнена ли локация
func (l Location) IsZero() bool {
	return l.Type == "" && len(l.Coordinates) == 0
}
