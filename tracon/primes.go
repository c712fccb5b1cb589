package tracon

// primes holds the capacities the table steps through, the smallest prime
// above each power of two from 2^6.
var primes = [...]uint32{
	67, 131, 257, 521, 1031, 2053, 4099, 8209, 16411, 32771, 65537,
	131101, 262147, 524309, 1048583, 2097169, 4194319, 8388617, 16777259,
	33554467, 67108879, 134217757, 268435459, 536870923, 1073741827,
}
