package system

import "fmt"

// RegionScope is the territorial reach of a responsibility row. A row is
// either bound to one region or republic-wide. The republic-wide variant
// replaces the nullable-region sentinel at the type level so "all
// regions" can never be confused with "no region".
type RegionScope struct {
	regionID *uint
}

// RepublicWide returns the scope covering every region.
func RepublicWide() RegionScope {
	return RegionScope{}
}

// ForRegion returns the scope covering a single region.
func ForRegion(regionID uint) (RegionScope, error) {
	if regionID == 0 {
		return RegionScope{}, fmt.Errorf("region ID cannot be zero")
	}
	id := regionID
	return RegionScope{regionID: &id}, nil
}

// RegionScopeFromPtr rebuilds a scope from a persisted nullable region
// ID. A nil pointer means republic-wide.
func RegionScopeFromPtr(regionID *uint) RegionScope {
	if regionID == nil || *regionID == 0 {
		return RegionScope{}
	}
	id := *regionID
	return RegionScope{regionID: &id}
}

func (s RegionScope) IsRepublicWide() bool {
	return s.regionID == nil
}

// RegionID returns the bound region and true, or zero and false when
// republic-wide.
func (s RegionScope) RegionID() (uint, bool) {
	if s.regionID == nil {
		return 0, false
	}
	return *s.regionID, true
}

// RegionIDPtr returns the nullable form for persistence.
func (s RegionScope) RegionIDPtr() *uint {
	if s.regionID == nil {
		return nil
	}
	id := *s.regionID
	return &id
}

// Covers reports whether the scope includes the given ticket region.
func (s RegionScope) Covers(regionID uint) bool {
	if s.regionID == nil {
		return true
	}
	return *s.regionID == regionID
}

func (s RegionScope) String() string {
	if s.regionID == nil {
		return "republic"
	}
	return fmt.Sprintf("region:%d", *s.regionID)
}
