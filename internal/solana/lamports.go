package solana

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol = 1_000_000_000

// LamportsToSol converts a lamport amount to its SOL representation for
// client-facing payloads. Internal accounting stays in lamports.
func LamportsToSol(lamports int64) float64 {
	return float64(lamports) / float64(LamportsPerSol)
}
