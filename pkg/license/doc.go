// Package license models a single license generation: lazy template
// loading, %%name%% placeholder extraction, substitution, and final
// rendering.
package license
