// Package auth provides the authentication and authorization core for the
// forum API: bcrypt password hashing, JWT issuance and validation, the
// username/password authenticator, and the self-access guard that binds a
// token's subject to the user addressed by the request path.
//
// Token model:
//   - Tokens are stateless HMAC-signed claim bundles {sub, email, iat, exp}.
//     Validity is a function of the signature and the clock only; there is
//     no revocation list, so a password change does not invalidate tokens
//     that were already issued.
//   - Validate collapses every failure (malformed, bad signature, expired)
//     into ErrUnableToDecodeToken so callers cannot distinguish why a token
//     was rejected. The underlying cause is logged, never returned.
//
// Authorization:
//   - RequireSelf runs after the JWT middleware. It resolves the token's
//     subject against the identity store and compares the resolved id to
//     the :userId route parameter. A missing or undecodable token is always
//     a 401; a valid token acting on another user's resource is a 403.
package auth
