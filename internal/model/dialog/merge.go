package dialog

// CompanyData is the structured record accumulated from autocomplete
// side-channel payloads. Organization requisites and the applicant's own
// lookup results (name, address) share one record because the frontend
// delivers them all through the same channel.
type CompanyData struct {
	Name         string `json:"name,omitempty"`
	INN          string `json:"inn,omitempty"`
	OGRN         string `json:"ogrn,omitempty"`
	KPP          string `json:"kpp,omitempty"`
	Address      string `json:"address,omitempty"`
	Region       string `json:"region,omitempty"`
	City         string `json:"city,omitempty"`
	CityDistrict string `json:"city_district,omitempty"`
	Area         string `json:"area,omitempty"`
	Settlement   string `json:"settlement,omitempty"`
	Director     string `json:"director,omitempty"`
	DirectorPost string `json:"director_post,omitempty"`

	// FIO only ever arrives on incoming payloads; the merge maps it onto
	// UserFIO so it cannot collide with organization fields.
	FIO         string `json:"fio,omitempty"`
	UserFIO     string `json:"user_fio,omitempty"`
	UserAddress string `json:"user_address,omitempty"`
}

// Empty reports whether no field is set.
func (c CompanyData) Empty() bool {
	return c == CompanyData{}
}

// MergeCompanyData folds an autocomplete payload into the accumulated record
// using field-presence precedence:
//
//   - a payload carrying a tax id is an organization record and all of its
//     fields are merged in;
//   - a payload carrying a person name maps to the applicant's name field;
//   - a payload carrying only an address maps to the applicant's address;
//   - anything else merges wholesale.
//
// The rules keep a later, narrower lookup (say, an address suggestion) from
// clobbering an earlier, richer organization lookup.
func MergeCompanyData(existing, incoming CompanyData) CompanyData {
	switch {
	case incoming.INN != "":
		return overlay(existing, incoming)
	case incoming.FIO != "":
		existing.UserFIO = incoming.FIO
		return existing
	case incoming.Address != "":
		existing.UserAddress = incoming.Address
		return existing
	default:
		return overlay(existing, incoming)
	}
}

// overlay copies every non-empty field of incoming over existing.
func overlay(existing, incoming CompanyData) CompanyData {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&existing.Name, incoming.Name)
	set(&existing.INN, incoming.INN)
	set(&existing.OGRN, incoming.OGRN)
	set(&existing.KPP, incoming.KPP)
	set(&existing.Address, incoming.Address)
	set(&existing.Region, incoming.Region)
	set(&existing.City, incoming.City)
	set(&existing.CityDistrict, incoming.CityDistrict)
	set(&existing.Area, incoming.Area)
	set(&existing.Settlement, incoming.Settlement)
	set(&existing.Director, incoming.Director)
	set(&existing.DirectorPost, incoming.DirectorPost)
	set(&existing.UserFIO, incoming.UserFIO)
	set(&existing.UserAddress, incoming.UserAddress)
	return existing
}

// JurisdictionSignals lists the organization's location markers from the
// most specific to the most general, for recipient recommendation.
func (c CompanyData) JurisdictionSignals() []string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("Район города", c.CityDistrict)
	add("Город", c.City)
	add("Район области", c.Area)
	add("Населённый пункт", c.Settlement)
	add("Регион", c.Region)
	return parts
}
