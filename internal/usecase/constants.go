package usecase

// MaxNumberAttempts bounds collision retries when allocating a fresh
// account number. The 8-digit space makes collisions unlikely; the cap
// turns a corrupt or saturated ledger into an error instead of a spin.
const MaxNumberAttempts = 100
