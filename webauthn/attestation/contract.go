// SPDX-License-Identifier: MIT

package attestation

import (
	"github.com/pkg/errors"
)

// Public API.

const (
	PublicKey PublicKeyCredentialType = "public-key"

	ResidentKeyDiscouraged ResidentKeyRequirement = "discouraged"
	ResidentKeyPreferred   ResidentKeyRequirement = "preferred"
	ResidentKeyRequired    ResidentKeyRequirement = "required"

	AttachmentCrossPlatform AuthenticatorAttachment = "cross-platform"
	AttachmentPlatform      AuthenticatorAttachment = "platform"

	UserVerificationDiscouraged UserVerificationRequirement = "discouraged"
	UserVerificationPreferred   UserVerificationRequirement = "preferred"
	UserVerificationRequired    UserVerificationRequirement = "required"

	TransportBLE      AuthenticatorTransport = "ble"
	TransportInternal AuthenticatorTransport = "internal"
	TransportNFC      AuthenticatorTransport = "nfc"
	TransportUSB      AuthenticatorTransport = "usb"

	ConveyanceDirect     AttestationConveyancePreference = "direct"
	ConveyanceEnterprise AttestationConveyancePreference = "enterprise"
	ConveyanceIndirect   AttestationConveyancePreference = "indirect"
	ConveyanceNone       AttestationConveyancePreference = "none"
)

var (
	ErrMissingRPID     = errors.New("rpID is required")
	ErrMissingRPName   = errors.New("rpName is required")
	ErrMissingUserID   = errors.New("userID is required")
	ErrMissingUserName = errors.New("userName is required")
)

type (
	PublicKeyCredentialType         string
	ResidentKeyRequirement          string
	AuthenticatorAttachment         string
	UserVerificationRequirement     string
	AuthenticatorTransport          string
	AttestationConveyancePreference string

	AuthenticatorSelectionCriteria struct {
		AuthenticatorAttachment *AuthenticatorAttachment     `json:"authenticatorAttachment,omitempty"`
		RequireResidentKey      *bool                        `json:"requireResidentKey,omitempty"`
		ResidentKey             *ResidentKeyRequirement      `json:"residentKey,omitempty"`
		UserVerification        *UserVerificationRequirement `json:"userVerification,omitempty"`
	}
	PublicKeyCredentialDescriptor struct {
		ID             string                   `json:"id"`
		Transports     []AuthenticatorTransport `json:"transports,omitempty"`
		CredentialType PublicKeyCredentialType  `json:"type"`
	}
	AuthenticationExtensionsClientInputs struct {
		AppID        string `json:"appid,omitempty"`
		AppIDExclude string `json:"appidExclude,omitempty"`
		CredProps    bool   `json:"credProps,omitempty"`
		UVM          bool   `json:"uvm,omitempty"`
	}
	PublicKeyCredentialParameters struct {
		Alg            int32                   `json:"alg"`
		CredentialType PublicKeyCredentialType `json:"type"`
	}
	PublicKeyCredentialRpEntity struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	PublicKeyCredentialUserEntity struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName,omitempty"`
		Name        string `json:"name"`
	}
	PublicKeyCredentialCreationOptions struct {
		RP                     PublicKeyCredentialRpEntity           `json:"rp"`
		User                   PublicKeyCredentialUserEntity         `json:"user"`
		Challenge              string                                `json:"challenge"`
		PubKeyCredParams       []PublicKeyCredentialParameters       `json:"pubKeyCredParams"`
		ExcludeCredentials     []PublicKeyCredentialDescriptor       `json:"excludeCredentials,omitempty"`
		Extensions             *AuthenticationExtensionsClientInputs `json:"extensions,omitempty"`
		Attestation            AttestationConveyancePreference       `json:"attestation,omitempty"`
		AuthenticatorSelection *AuthenticatorSelectionCriteria       `json:"authenticatorSelection,omitempty"`
		Timeout                uint64                                `json:"timeout,omitempty"`
	}
	Options struct {
		RPID                   string
		RPName                 string
		UserID                 string
		UserName               string
		UserDisplayName        string
		Challenge              string
		Timeout                uint64
		AttestationType        AttestationConveyancePreference
		ExcludeCredentials     []PublicKeyCredentialDescriptor
		AuthenticatorSelection *AuthenticatorSelectionCriteria
		Extensions             *AuthenticationExtensionsClientInputs
		SupportedAlgorithmIDs  []int32
	}
)

// Private API.

const (
	defaultTimeoutMilliseconds = 60000
)

// .
var (
	// COSE algorithm identifiers offered when the caller does not narrow them down,
	// broadly what authenticators in the wild actually support.
	//nolint:gochecknoglobals // Immutable lookup table.
	defaultCOSEAlgorithmIDs = []int32{-7, -8, -36, -37, -38, -39, -257, -258, -259, -65535}
)
