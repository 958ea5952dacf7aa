package migrate

import (
	"database/sql"
	"fmt"
	"time"
)

var (
	firstNames = []string{"Amina", "Brian", "Chloe", "David", "Esther", "Farah", "George", "Hana", "Ivan", "Joy", "Kevin", "Lena"}
	lastNames  = []string{"Otieno", "Smith", "Wanjiru", "Garcia", "Kamau", "Nguyen", "Mwangi", "Brown", "Achieng", "Rossi"}
	locations  = []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Thika", "Malindi", "Nyeri"}
)

type seedCustomer struct {
	name     string
	age      sql.NullInt32
	phone    sql.NullString
	location string
	date     string
	time     string
}

// generate builds one plausible customer created within the last year.
// Roughly one in ten rows has no age and one in ten has no phone.
func (m *Migrator) generate() seedCustomer {
	r := m.rand

	c := seedCustomer{
		name:     firstNames[r.IntN(len(firstNames))] + " " + lastNames[r.IntN(len(lastNames))],
		location: locations[r.IntN(len(locations))],
	}

	if r.IntN(10) != 0 {
		c.age = sql.NullInt32{Int32: int32(18 + r.IntN(63)), Valid: true}
	}
	if r.IntN(10) != 0 {
		c.phone = sql.NullString{String: fmt.Sprintf("+2547%08d", r.IntN(100_000_000)), Valid: true}
	}

	created := m.now().Add(-time.Duration(r.Int64N(int64(365 * 24 * time.Hour))))
	c.date = created.Format(time.DateOnly)
	c.time = created.Format(time.TimeOnly)

	return c
}
