package utils

import "time"

// GetIndiaLocation retorna a localização de Kolkata (UTC+5:30).
// Esta função deve ser usada em todo o projeto para obter o fuso horário padrão,
// garantindo consistência em todas as operações relacionadas a data e hora.
func GetIndiaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback para UTC+5:30 se não conseguir carregar a localização
		loc = time.FixedZone("IST", int(5*time.Hour/time.Second)+int(30*time.Minute/time.Second))
	}
	return loc
}

// StartOfDay normaliza um instante para 00:00:00 do mesmo dia
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
