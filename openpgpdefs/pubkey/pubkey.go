package pubkey

// PubKeyAlgorithm is an OpenPGP public-key algorithm id.
type PubKeyAlgorithm = int

const (
	// https://tools.ietf.org/html/rfc4880#section-9.1
	RsaEncryptOrSign     PubKeyAlgorithm = 1
	RsaEncryptOnly                       = 2
	RsaSignOnly                          = 3
	ElgamalEncryptOnly                   = 16
	Dsa                                  = 17
	EllipticCurve                        = 18
	Ecdsa                                = 19
	ElgamalEncryptOrSign                 = 20
	DiffieHellman                        = 21
	Eddsa                                = 22
)

// Name returns the human readable name for the given public-key algorithm
// id. Ids outside the RFC 4880 table come back as "Unknown".
func Name(algorithmID int) string {
	switch algorithmID {
	case RsaEncryptOrSign:
		return "RSA Encrypt or Sign"

	case RsaEncryptOnly:
		return "RSA Encrypt-Only"

	case RsaSignOnly:
		return "RSA Sign-Only"

	case ElgamalEncryptOnly:
		return "ElGamal Encrypt-Only"

	case Dsa:
		return "DSA"

	case EllipticCurve:
		return "Elliptic Curve"

	case Ecdsa:
		return "ECDSA"

	case ElgamalEncryptOrSign:
		return "Formerly ElGamal Encrypt or Sign"

	case DiffieHellman:
		return "Diffie-Hellman"

	case Eddsa:
		return "EdDSA"

	case 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110:
		return "Private/Experimental algorithm"

	default:
		return "Unknown"
	}
}
