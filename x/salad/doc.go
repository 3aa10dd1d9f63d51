/*
Package salad implements the settlement engine of a privacy preserving
coin mixer.

Participants deposit equal stakes into a shared pool account. The escrow
ledger tracks per account how much the pool holds and arms a withdrawal
time lock on every deposit, so funds committed to an upcoming mixing
round cannot be pulled out at the last moment.

A deal is a single mixing round: an organizer names the required deposit
and the participating accounts, and the deal becomes executable once
every participant holds enough in the ledger. Off chain, a secure
computation network collects the participants' encrypted payout
addresses, shuffles them and calls back with the unlinked recipient
list. The distribute transaction settles that callback. It is restricted
to the configured executor and pays every recipient the deposit minus
the relayer fee out of the pool. A deal settles exactly once; the
organizer can cancel an executable deal, which permanently blocks
settlement.
*/
package salad
