package httpclient

// CensoredMessage replaces secret values in logged requests.
const CensoredMessage = "<actual secret censored>"

// Header and body keys whose values are censored before logging.
var (
	headerSecrets = []string{"Authorization", "X-Auth-Token"}
	bodySecrets   = []string{"password"}
)

// Censor returns a copy of payload with the values of the given secret
// keys replaced by CensoredMessage. The original map is not modified.
func Censor[V any](secrets []string, payload map[string]V) map[string]any {
	censored := make(map[string]any, len(payload))
	for k, v := range payload {
		censored[k] = v
	}
	for _, secret := range secrets {
		if _, ok := censored[secret]; ok {
			censored[secret] = CensoredMessage
		}
	}
	return censored
}

// censorValue censors a payload of unknown structure. Only string-keyed
// maps can be walked; any other payload is returned unchanged.
func censorValue(secrets []string, payload any) any {
	switch m := payload.(type) {
	case map[string]any:
		return Censor(secrets, m)
	case map[string]string:
		return Censor(secrets, m)
	default:
		return payload
	}
}
