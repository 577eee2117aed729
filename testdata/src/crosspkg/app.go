package crosspkg

import "crosspkgdep"

//singletonsafe:singleton
type App struct { // want App:`lifetime\(shared\)`
	req     *crosspkgdep.Request // want `field "req" of singleton App captures \*crosspkgdep.Request registered with a non-singleton lifetime`
	counter *crosspkgdep.Counter // want `field "counter" of singleton App holds mutable type \*crosspkgdep.Counter`
	guarded *crosspkgdep.Guarded
	config  *crosspkgdep.Config
}
