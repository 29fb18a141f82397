// Package claims decodes GameStack access tokens.
//
// Access tokens are compact JWTs whose payload carries the registered aud,
// exp and sub claims plus an application object stored under Namespace:
//
//	{"aud":"…","exp":1634009397,"sub":"…","https://gamestack.io/jwt/claims":{"identity":"someone@example.com"}}
//
// Decode reads the payload without checking the signature; the SDK only needs
// the identity claim, including from a token that is being refreshed.
// Verifier checks the signature with a shared HMAC secret and, when asked,
// the exp/nbf claims.
package claims
