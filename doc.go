// Package qprep synthesizes quantum state-preparation circuits.
//
// Given a normalized complex amplitude vector of length 2^n and an ordered
// list of n qubit labels (most-significant first), the two synthesizers emit a
// finite sequence of elementary gates (RY, RZ, CNOT) that prepares the vector
// from |0...0⟩ up to global phase:
//
//   - RecursivePrepare follows Bergholm, Vartiainen, Möttönen and Salomaa
//     (Phys. Rev. A 71, 052330): it nullifies adjacent amplitude pairs with a
//     uniformly controlled gate level and recurses on the halved vector.
//   - MultiplexedPrepare follows Shende, Bullock and Markov
//     (IEEE TCAD 25, 1000): it walks qubit levels top-down, expanding each
//     multiplexed rotation into single-target rotations and CNOTs, with
//     Gray-code or natural bit ordering.
//
// The package also ships the collaborators the synthesizers are written
// against: a dense statevector executor (Execute), a phase-normalized result
// checker (Verify) and QASM 2.0 interchange for the emitted gate vocabulary.
package qprep
