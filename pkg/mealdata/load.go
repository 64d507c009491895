package mealdata

// Load reads the meal log from the SQLite store when useDB is set,
// otherwise from the CSV file.
func Load(csvPath, dbPath string, useDB bool) ([]Row, error) {
	if !useDB {
		return ReadCSV(csvPath)
	}
	store, err := OpenStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadRows()
}
