package repository

// FlagRepository define el puerto para marcas de aplicación de una sola vez
// (por ejemplo la marca "seeded" de datos iniciales).
type FlagRepository interface {
	IsSet(name string) (bool, error)
	Set(name string) error
}
