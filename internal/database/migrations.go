package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir subject_id a instalaciones anteriores a la
	// integración con el proveedor de identidad
	addSubjectIDColumnSQL := `
	ALTER TABLE users ADD COLUMN IF NOT EXISTS subject_id TEXT;
	`

	_, err := DB.Exec(addSubjectIDColumnSQL)
	if err != nil {
		log.Printf("Error al añadir columna subject_id: %v", err)
		return err
	}

	// Migración para añadir updated_at a la tabla de monedas
	addCoinUpdatedAtSQL := `
	ALTER TABLE coins ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ DEFAULT NOW();
	`

	_, err = DB.Exec(addCoinUpdatedAtSQL)
	if err != nil {
		log.Printf("Error al añadir columna updated_at: %v", err)
		return err
	}

	log.Println("Migraciones completadas")
	return nil
}
