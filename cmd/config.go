package cmd

// Config carries the runtime settings read from the environment.
// OrderSource selects where orders come from: "fixture" serves the built-in
// sample set with a simulated delay, "postgres" reads from the database
// described by the DB fields.
type Config struct {
	HTTPPort     string
	OrderSource  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	SessionFile  string
	FetchDelayMS string
	LoginDelayMS string
	SyncInterval string
}
