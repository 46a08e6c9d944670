// SPDX-License-Identifier: MIT

// Package attestation builds WebAuthn credential-creation options: field defaulting,
// base64 encoding of binary-ish members and nothing else. No algorithmic content,
// just the data shapes relying parties hand to navigator.credentials.create.
package attestation

import (
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// GenerateCreationOptions expands the caller's options into a fully defaulted
// PublicKeyCredentialCreationOptions. The challenge, user id and excluded credential
// ids are base64 encoded; an empty challenge gets a random one.
func GenerateCreationOptions(opts *Options) (*PublicKeyCredentialCreationOptions, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	challenge := opts.Challenge
	if challenge == "" {
		challenge = uuid.NewString()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeoutMilliseconds
	}
	attestationType := opts.AttestationType
	if attestationType == "" {
		attestationType = ConveyanceNone
	}
	algorithmIDs := opts.SupportedAlgorithmIDs
	if len(algorithmIDs) == 0 {
		algorithmIDs = defaultCOSEAlgorithmIDs
	}
	credentialParameters := make([]PublicKeyCredentialParameters, 0, len(algorithmIDs))
	for _, algorithmID := range algorithmIDs {
		credentialParameters = append(credentialParameters, PublicKeyCredentialParameters{Alg: algorithmID, CredentialType: PublicKey})
	}

	return &PublicKeyCredentialCreationOptions{
		RP: PublicKeyCredentialRpEntity{ID: opts.RPID, Name: opts.RPName},
		User: PublicKeyCredentialUserEntity{
			ID:          base64.StdEncoding.EncodeToString([]byte(opts.UserID)),
			DisplayName: opts.UserDisplayName,
			Name:        opts.UserName,
		},
		Challenge:              base64.StdEncoding.EncodeToString([]byte(challenge)),
		PubKeyCredParams:       credentialParameters,
		ExcludeCredentials:     encodeCredentialIDs(opts.ExcludeCredentials),
		Extensions:             opts.Extensions,
		Attestation:            attestationType,
		AuthenticatorSelection: defaultAuthenticatorSelection(opts.AuthenticatorSelection),
		Timeout:                timeout,
	}, nil
}

func validate(opts *Options) error {
	var result *multierror.Error
	if opts.RPID == "" {
		result = multierror.Append(result, ErrMissingRPID)
	}
	if opts.RPName == "" {
		result = multierror.Append(result, ErrMissingRPName)
	}
	if opts.UserID == "" {
		result = multierror.Append(result, ErrMissingUserID)
	}
	if opts.UserName == "" {
		result = multierror.Append(result, ErrMissingUserName)
	}

	return result.ErrorOrNil() //nolint:wrapcheck // We're just proxying it.
}

// "Relying Parties SHOULD set [requireResidentKey] to true if, and only if, residentKey
// is set to required". See https://www.w3.org/TR/webauthn-2/#dom-authenticatorselectioncriteria-requireresidentkey.
func defaultAuthenticatorSelection(selection *AuthenticatorSelectionCriteria) *AuthenticatorSelectionCriteria {
	if selection == nil {
		requireResidentKey := false
		userVerification := UserVerificationPreferred

		return &AuthenticatorSelectionCriteria{RequireResidentKey: &requireResidentKey, UserVerification: &userVerification}
	}
	defaulted := *selection
	if defaulted.ResidentKey != nil && *defaulted.ResidentKey == ResidentKeyRequired {
		requireResidentKey := true
		defaulted.RequireResidentKey = &requireResidentKey
	}

	return &defaulted
}

func encodeCredentialIDs(credentials []PublicKeyCredentialDescriptor) []PublicKeyCredentialDescriptor {
	if len(credentials) == 0 {
		return nil
	}
	encoded := make([]PublicKeyCredentialDescriptor, 0, len(credentials))
	for _, credential := range credentials {
		credential.ID = base64.StdEncoding.EncodeToString([]byte(credential.ID))
		encoded = append(encoded, credential)
	}

	return encoded
}
